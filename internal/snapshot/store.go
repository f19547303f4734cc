// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snapshot writes and reads the per-category author snapshots, draws
// random samples from them, and dumps them to other file formats.
//
// A snapshot is a JSON object keyed by author name:
//
//	{
//	    "Ada Lovelace": {
//	        "co_authors": ["Charles Babbage"],
//	        "num_pubs": 2
//	    }
//	}
//
// Key order follows the order in which authors were first observed and is
// preserved on load.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// DefaultDir is the snapshot directory used when none is configured.
const DefaultDir = "author_data"

const indent = "    "

// ErrNotFound is returned by Load when no snapshot exists for a category.
var ErrNotFound = errors.New("snapshot not found")

// Store reads and writes snapshot files under one directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir (DefaultDir when empty).
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{dir: dir}
}

// Dir returns the snapshot directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the snapshot file for category.
func (s *Store) Path(c types.Category) string {
	return filepath.Join(s.dir, c.Slug+"_authors.json")
}

// Exists reports whether a snapshot file exists for category.
func (s *Store) Exists(c types.Category) bool {
	_, err := os.Stat(s.Path(c))
	return err == nil
}

// Save writes records as the category snapshot, replacing any previous one.
// The file is written to a temporary name and renamed into place.
func (s *Store) Save(c types.Category, records []types.AuthorRecord) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating snapshot directory: %w", err)
	}

	data, err := Encode(records)
	if err != nil {
		return "", err
	}

	path := s.Path(c)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("replacing snapshot: %w", err)
	}
	return path, nil
}

// Load reads the category snapshot.
func (s *Store) Load(c types.Category) ([]types.AuthorRecord, error) {
	f, err := os.Open(s.Path(c))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w for %s: run fetch first (%s)", ErrNotFound, c.Name, s.Path(c))
		}
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path(c), err)
	}
	return records, nil
}

type entry struct {
	CoAuthors []string `json:"co_authors"`
	NumPubs   int      `json:"num_pubs"`
}

// Encode renders records in the snapshot format.
func Encode(records []types.AuthorRecord) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n" + indent)

		key, err := json.Marshal(r.Name)
		if err != nil {
			return nil, fmt.Errorf("encoding author name: %w", err)
		}
		co := r.CoAuthors
		if co == nil {
			co = []string{}
		}
		val, err := json.MarshalIndent(entry{CoAuthors: co, NumPubs: r.NumPubs}, indent, indent)
		if err != nil {
			return nil, fmt.Errorf("encoding record %q: %w", r.Name, err)
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	if len(records) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// Decode reads a snapshot, keeping the file's key order. A name that appears
// twice keeps its last value at its first position. Self-references and
// repeated co-authors are dropped.
func Decode(r io.Reader) ([]types.AuthorRecord, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var records []types.AuthorRecord
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding author name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected author name, got %v", tok)
		}

		var e entry
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("decoding record %q: %w", name, err)
		}
		rec := types.AuthorRecord{Name: name, CoAuthors: cleanCoAuthors(name, e.CoAuthors), NumPubs: e.NumPubs}

		if i, dup := index[name]; dup {
			records[i] = rec
			continue
		}
		index[name] = len(records)
		records = append(records, rec)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return records, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("decoding snapshot: expected %q, got %v", want, tok)
	}
	return nil
}

func cleanCoAuthors(self string, names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == self || n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
