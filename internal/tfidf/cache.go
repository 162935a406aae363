package tfidf

import (
	"bytes"
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// snapshot is the gob-serializable form of a fitted Vectorizer + Matrix
// pair, the unit persisted by the content-addressed cache.
type snapshot struct {
	IDF    map[string]float64
	Matrix Matrix
}

// Key derives the cache key for a reference snapshot: the sha1 of its
// search_string column, pipe-joined in row order. Any change to the
// reference data's search strings — a new account, an edited name —
// changes the key, so the cache can never serve a stale fit.
func Key(searchStrings []string) string {
	sum := sha1.Sum([]byte(strings.Join(searchStrings, "|")))
	return hex.EncodeToString(sum[:])
}

// Cache is a two-layer vectorizer cache: an in-process LRU accelerator in
// front of a content-addressed on-disk store. The disk store is the
// source of truth; the LRU layer only saves a
// disk read when the same snapshot is loaded or saved more than once
// through the same Cache in one process.
type Cache struct {
	dir string
	mem *lru.Cache[string, snapshot]
}

// NewCache opens a cache rooted at dir (created on first Save if absent),
// with an in-memory accelerator sized for a handful of recent fits.
func NewCache(dir string) (*Cache, error) {
	mem, err := lru.New[string, snapshot](4)
	if err != nil {
		return nil, fmt.Errorf("tfidf cache: %w", err)
	}
	return &Cache{dir: dir, mem: mem}, nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, fmt.Sprintf("tfidf_%s.gob", key))
}

// Load attempts to retrieve a previously fitted (Vectorizer, Matrix) pair
// for key. ok is false on any miss or corrupt read — cache errors are
// non-fatal by design; the caller falls through to refitting from
// scratch.
func (c *Cache) Load(key string) (v *Vectorizer, m Matrix, ok bool) {
	if snap, hit := c.mem.Get(key); hit {
		return &Vectorizer{idf: snap.IDF}, snap.Matrix, true
	}

	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, nil, false
	}
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, nil, false
	}
	c.mem.Add(key, snap)
	return &Vectorizer{idf: snap.IDF}, snap.Matrix, true
}

// Save persists a fitted (Vectorizer, Matrix) pair under key. Write
// failures are returned to the caller to log as a warning; they are never
// fatal to the run that produced the fit.
func (c *Cache) Save(key string, v *Vectorizer, m Matrix) error {
	snap := snapshot{IDF: v.idf, Matrix: m}
	c.mem.Add(key, snap)

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("tfidf cache: create dir: %w", err)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return fmt.Errorf("tfidf cache: encode: %w", err)
	}
	if err := os.WriteFile(c.path(key), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("tfidf cache: write: %w", err)
	}
	return nil
}
