// Package internal holds process-level plumbing: environment configuration
// and the debug side server.
package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host string `env:"HOST,default=0.0.0.0"`
	Port int    `env:"PORT,default=8080"`
	// DebugPort exposes the store/process inspection endpoints when set.
	// Zero keeps the debug server off.
	DebugPort int `env:"DEBUG_PORT"`

	JWTSecret      string `env:"JWT_SECRET,required=true"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`

	AttachmentDir     string `env:"ATTACHMENT_DIR,default=./attachments"`
	MaxAttachmentSize int64  `env:"MAX_ATTACHMENT_SIZE,default=10485760"`

	// CensoredWords is a comma separated list; empty disables moderation.
	CensoredWords   string `env:"CENSORED_WORDS"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`

	PresenceRefreshInterval time.Duration `env:"PRESENCE_REFRESH_INTERVAL,default=5m"`
	LogLevel                string        `env:"LOG_LEVEL,default=info"`
}

// Words splits the censored word list, dropping empty entries so a trailing
// comma does not poison the moderator.
func (c Config) Words() []string {
	var words []string
	for _, word := range strings.Split(c.CensoredWords, ",") {
		if trimmed := strings.TrimSpace(word); trimmed != "" {
			words = append(words, trimmed)
		}
	}
	return words
}

// CharacterRune validates that the configured replacement is one rune.
func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
