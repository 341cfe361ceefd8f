package storage

import (
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"presence-hub/domain"
	"presence-hub/errors"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func Test_Save_Sniffs_Content(t *testing.T) {
	req := require.New(t)
	root := t.TempDir()
	store := NewAttachmentStore(root, 1<<20, slog.Default())

	paths, err := store.Save("conv-1", []domain.Attachment{{
		Name: "photo.png",
		Type: "image/png",
		Data: "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader),
	}})
	req.NoError(err)
	req.Len(paths, 1)
	req.Equal(".png", filepath.Ext(paths[0]))

	stored, err := os.ReadFile(filepath.Join(root, paths[0]))
	req.NoError(err)
	req.Equal(pngHeader, stored)
}

func Test_Save_Rejects_Oversize(t *testing.T) {
	req := require.New(t)
	store := NewAttachmentStore(t.TempDir(), 4, slog.Default())

	_, err := store.Save("conv-1", []domain.Attachment{{
		Name: "big.bin",
		Data: base64.StdEncoding.EncodeToString([]byte("way too large")),
	}})
	req.ErrorIs(err, errors.ErrAttachmentTooLarge)
}

func Test_Save_Rejects_Bad_Base64(t *testing.T) {
	req := require.New(t)
	store := NewAttachmentStore(t.TempDir(), 0, slog.Default())

	_, err := store.Save("conv-1", []domain.Attachment{{Name: "x", Data: "%%%not-base64%%%"}})
	req.Error(err)
}
