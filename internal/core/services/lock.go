package services

import (
	"path/filepath"

	"github.com/custodia-labs/sercha-sources/internal/core/domain"
	"github.com/custodia-labs/sercha-sources/internal/core/ports/driven"
)

// LockCoordinator runs transactions under the exclusive lock that guards a
// storage file. The lock is scoped to the file's parent directory, which is
// created first when missing.
type LockCoordinator struct {
	backend driven.Persistence
}

// NewLockCoordinator creates a lock coordinator over backend.
func NewLockCoordinator(backend driven.Persistence) *LockCoordinator {
	return &LockCoordinator{backend: backend}
}

// Do runs body while holding the lock for path. It blocks until the lock is
// granted. The lock is released when body returns, fails or panics.
func (c *LockCoordinator) Do(path string, body func() error) error {
	dir := filepath.Dir(path)
	if err := c.backend.MkdirAll(dir); err != nil {
		return &domain.IOError{Op: "mkdir", Path: dir, Err: err}
	}

	return c.backend.WithExclusiveLock(dir, body)
}
