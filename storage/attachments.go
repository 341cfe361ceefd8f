// Package storage persists decoded message attachments on disk. The declared
// client mime type is advisory only; content sniffing decides the stored
// extension.
package storage

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"presence-hub/domain"
	"presence-hub/errors"
)

type AttachmentStore struct {
	root    string
	maxSize int64
	log     *slog.Logger
}

func NewAttachmentStore(root string, maxSize int64, log *slog.Logger) AttachmentStore {
	return AttachmentStore{root: root, maxSize: maxSize, log: log}
}

// Save decodes and writes every attachment under a per-conversation
// directory and returns the stored relative paths.
func (s AttachmentStore) Save(conversationID string, attachments []domain.Attachment) ([]string, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	dir := filepath.Join(s.root, "chats_"+conversationID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(attachments))
	for _, attachment := range attachments {
		data, err := decodePayload(attachment.Data)
		if err != nil {
			return nil, fmt.Errorf("attachment %q: %w", attachment.Name, err)
		}
		if s.maxSize > 0 && int64(len(data)) > s.maxSize {
			return nil, fmt.Errorf("%w: %q is %d bytes", errors.ErrAttachmentTooLarge, attachment.Name, len(data))
		}

		detected := mimetype.Detect(data)
		if attachment.Type != "" && !detected.Is(attachment.Type) {
			s.log.Warn("Attachment content differs from declared type",
				"name", attachment.Name, "declared", attachment.Type, "detected", detected.String())
		}

		name := uuid.New().String() + detected.Extension()
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, filepath.Join("chats_"+conversationID, name))
	}
	return paths, nil
}

// decodePayload accepts both a raw base64 string and the data-URL form
// "data:<mime>;base64,<payload>" browsers produce.
func decodePayload(payload string) ([]byte, error) {
	if idx := strings.IndexByte(payload, ','); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	return base64.StdEncoding.DecodeString(payload)
}
