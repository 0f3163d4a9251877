package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// FileCache stores entries as JSON files, each carrying its own expiry
// time. Files are spread over 256 subdirectories by key hash.
type FileCache struct {
	fs  billy.Filesystem
	dir string
}

// NewFileCache creates a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{fs: osfs.New(dir), dir: dir}, nil
}

// NewFileCacheFS creates a file cache on an arbitrary billy filesystem.
func NewFileCacheFS(fs billy.Filesystem) *FileCache {
	return &FileCache{fs: fs, dir: fs.Root()}
}

type cacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a value. Corrupt and expired entries are removed and
// reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	p := c.path(key)

	raw, err := util.ReadFile(c.fs, p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = c.fs.Remove(p)
		return nil, false, nil
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = c.fs.Remove(p)
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set stores a value.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := cacheEntry{Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	p := c.path(key)
	if err := c.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return err
	}
	return util.WriteFile(c.fs, p, raw, 0o644)
}

// Delete removes a value.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := c.fs.Remove(c.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string {
	return c.dir
}

// Clear removes every entry and returns how many were removed.
func (c *FileCache) Clear() (int, error) {
	subdirs, err := c.fs.ReadDir("/")
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	count := 0
	for _, sub := range subdirs {
		if !sub.IsDir() {
			continue
		}
		files, err := c.fs.ReadDir(sub.Name())
		if err != nil {
			continue
		}
		for _, f := range files {
			if err := c.fs.Remove(path.Join(sub.Name(), f.Name())); err == nil {
				count++
			}
		}
		_ = c.fs.Remove(sub.Name())
	}
	return count, nil
}

// path maps a key to "<first two hash chars>/<rest>.json".
func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return path.Join(h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
