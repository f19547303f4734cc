// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials and contact details from a directory of
// plain-text files. Each file in the directory represents one secret: the
// filename is the key name and the file contents (trimmed) are the value.
//
// Supported key files: arxiv-contact.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ArxivContact names the file holding the email address advertised to arXiv
// in the User-Agent header.
const ArxivContact = "arxiv-contact"

// Secrets maps key names to values.
type Secrets map[string]string

// Load reads all files in dir. A missing directory is not an error; Load
// returns an empty set. Unreadable files are logged and skipped.
func Load(dir string) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("could not read secret", "name", name, "error", err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	return s, nil
}

// Lookup returns override when it is set, else the stored value for key.
func (s Secrets) Lookup(key, override string) string {
	if override != "" {
		return override
	}
	return s[key]
}

// UserAgent appends the arXiv contact address, when present, to base in the
// "name/version (mailto:addr)" form arXiv asks API clients to use.
func (s Secrets) UserAgent(base string) string {
	if contact := s[ArxivContact]; contact != "" {
		return fmt.Sprintf("%s (mailto:%s)", base, contact)
	}
	return base
}
