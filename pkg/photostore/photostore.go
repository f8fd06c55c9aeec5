package photostore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"inventory-service/pkg/log"
)

// Config configures a filesystem Store.
type Config struct {
	// Dir is created if it does not exist.
	Dir string
	// CacheSize is the number of files kept in the read cache. 0 disables it.
	CacheSize int
}

// Store keeps photos as plain files in a single directory.
type Store struct {
	dir   string
	l     log.Logger
	cache *readCache

	now     func() time.Time
	randInt func() int64
}

// New creates the directory if needed and returns a Store rooted at it.
func New(cfg Config, l log.Logger) (*Store, error) {
	if cfg.Dir == "" {
		return nil, ErrEmptyDir
	}
	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolving photo directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating photo directory: %w", err)
	}

	cache, err := newReadCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Store{
		dir:     dir,
		l:       l,
		cache:   cache,
		now:     time.Now,
		randInt: func() int64 { return rand.Int64N(1e9) },
	}, nil
}

// Dir returns the absolute directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// Save implements IPhotoStore.
func (s *Store) Save(ctx context.Context, originalFilename string, content io.Reader) (string, error) {
	name := s.generateName(originalFilename)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		s.l.Errorf(ctx, "photostore.Save open %s: %v", path, err)
		return "", ErrFailedWrite
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		s.l.Errorf(ctx, "photostore.Save copy %s: %v", path, err)
		return "", ErrFailedWrite
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		s.l.Errorf(ctx, "photostore.Save close %s: %v", path, err)
		return "", ErrFailedWrite
	}

	s.l.Debugf(ctx, "photostore.Save: stored %q as %s", originalFilename, name)
	return name, nil
}

// Read implements IPhotoStore.
func (s *Store) Read(ctx context.Context, filename string) ([]byte, error) {
	if !isPlainName(filename) {
		return nil, ErrNotFound
	}
	path := filepath.Join(s.dir, filename)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("stat photo: %w", err)
	}
	if info.IsDir() {
		return nil, ErrNotFound
	}

	if data, ok := s.cache.get(filename, info); ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading photo: %w", err)
	}

	s.cache.add(filename, info, data)
	return data, nil
}

// generateName builds "<unix-ms>-<random><ext>".
func (s *Store) generateName(originalFilename string) string {
	ext := filepath.Ext(filepath.Base(originalFilename))
	return fmt.Sprintf("%d-%d%s", s.now().UnixMilli(), s.randInt(), ext)
}

// isPlainName rejects anything that could resolve outside the store directory.
func isPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return filepath.Base(name) == name && filepath.IsLocal(name)
}
