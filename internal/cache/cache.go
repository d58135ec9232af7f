// Package cache is the content-addressable on-disk store that memoizes
// per-document work across builds. Entries are keyed by a digest of the
// document's identity path — never of its content — so a given document
// always maps to the same entry. Staleness is the caller's concern: compare
// Modified timestamps before trusting a hit.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mtholden/pagesmith/internal/doc"
	"github.com/mtholden/pagesmith/internal/record"
)

// entryVersion tags serialized snapshots so entries written by one release
// are detected, not misread, by another.
const entryVersion = 1

const entryExt = ".json"

// ErrMiss reports an identity with no cache entry. A miss is the normal
// condition on a first build; match it with errors.Is.
var ErrMiss = errors.New("cache miss")

// CorruptEntryError reports a present entry that could not be decoded or
// carries an unknown version. Unlike a miss, this is a real failure: the
// entry exists but cannot be trusted.
type CorruptEntryError struct {
	IDPath string
	Path   string
	Err    error
}

func (e *CorruptEntryError) Error() string {
	return fmt.Sprintf("cache: corrupt entry for %q at %s: %v", e.IDPath, e.Path, e.Err)
}

func (e *CorruptEntryError) Unwrap() error { return e.Err }

// envelope is the versioned on-disk encoding of one snapshot.
type envelope struct {
	Version int     `json:"version"`
	Doc     doc.Doc `json:"doc"`
}

// Cache is a directory of opaque entries named <hex digest>.json. No
// manifest or index is kept; presence of the named entry is the only source
// of truth. The cache never evicts, bounds, or resets itself.
type Cache struct {
	root string
}

// New opens (creating if needed) a cache rooted at dir.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("cache: create root: %w", err)
	}
	return &Cache{root: dir}, nil
}

// Root returns the cache directory.
func (c *Cache) Root() string { return c.root }

// Dump serializes the full Doc to its identity-derived entry and returns the
// Doc unchanged, so it slots inline into a pipe chain.
func (c *Cache) Dump(d doc.Doc) (doc.Doc, error) {
	data, err := json.Marshal(envelope{Version: entryVersion, Doc: d})
	if err != nil {
		return d, fmt.Errorf("cache: encode %q: %w", d.IDPath, err)
	}
	if err := os.WriteFile(c.entryPath(d.IDPath), data, 0o600); err != nil {
		return d, err
	}
	return d, nil
}

// Load deserializes the Doc previously dumped for id's identity path. A
// missing entry is ErrMiss; a present entry that fails to decode is a
// *CorruptEntryError.
func (c *Cache) Load(id record.Identifiable) (doc.Doc, error) {
	idPath := id.ID()
	entry := c.entryPath(idPath)
	data, err := os.ReadFile(entry)
	if err != nil {
		if os.IsNotExist(err) {
			return doc.Doc{}, fmt.Errorf("cache: no entry for %q: %w", idPath, ErrMiss)
		}
		return doc.Doc{}, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return doc.Doc{}, &CorruptEntryError{IDPath: idPath, Path: entry, Err: err}
	}
	if env.Version != entryVersion {
		return doc.Doc{}, &CorruptEntryError{
			IDPath: idPath,
			Path:   entry,
			Err:    fmt.Errorf("unsupported entry version %d", env.Version),
		}
	}
	return env.Doc, nil
}

// Has reports whether an entry exists for id without decoding it.
func (c *Cache) Has(id record.Identifiable) bool {
	_, err := os.Stat(c.entryPath(id.ID()))
	return err == nil
}

// entryPath derives the entry location from the identity path. The digest
// keeps names filesystem-safe and length-bounded regardless of the original
// path's depth or characters.
func (c *Cache) entryPath(idPath string) string {
	sum := sha256.Sum256([]byte(idPath))
	return filepath.Join(c.root, hex.EncodeToString(sum[:])+entryExt)
}
