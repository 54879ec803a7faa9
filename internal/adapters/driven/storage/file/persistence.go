package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-sources/internal/core/domain"
	"github.com/custodia-labs/sercha-sources/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-sources/internal/logger"
)

// Ensure Persistence implements the interface.
var _ driven.Persistence = (*Persistence)(nil)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// Persistence reads and writes files on the local filesystem.
type Persistence struct {
	atomicWrite bool
	log         logger.Logger
}

// Option configures a Persistence.
type Option func(*Persistence)

// WithAtomicWrite selects how WriteFile replaces a file. When enabled (the
// default) data goes to a temp file in the same directory, is synced and then
// renamed over the target, so readers never see a truncated file. When
// disabled the target is truncated and overwritten in place.
func WithAtomicWrite(enabled bool) Option {
	return func(p *Persistence) {
		p.atomicWrite = enabled
	}
}

// NewPersistence creates a filesystem persistence backend.
func NewPersistence(opts ...Option) *Persistence {
	p := &Persistence{
		atomicWrite: true,
		log:         logger.With("file-backend"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Exists reports whether path exists.
func (p *Persistence) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadFile returns the whole content of path.
func (p *Persistence) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile replaces the whole content of path with data.
func (p *Persistence) WriteFile(path string, data []byte) error {
	if !p.atomicWrite {
		return os.WriteFile(path, data, fileMode)
	}
	return p.replace(path, data)
}

// MkdirAll creates path and any missing parents.
func (p *Persistence) MkdirAll(path string) error {
	return os.MkdirAll(path, dirMode)
}

// WithExclusiveLock holds an exclusive flock on dir while fn runs.
// The call blocks until the lock is granted; there is no timeout.
func (p *Persistence) WithExclusiveLock(dir string, fn func() error) error {
	unlock, err := lockDir(dir)
	if err != nil {
		return &domain.LockError{Path: dir, Err: err}
	}
	defer func() {
		if err := unlock(); err != nil {
			p.log.Warn("release lock on %s: %v", dir, err)
		}
	}()
	p.log.Debug("locked %s", dir)
	return fn()
}

// replace writes data to a temp file next to path and renames it into place.
func (p *Persistence) replace(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
