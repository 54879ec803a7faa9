package memory

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/sercha-sources/internal/core/ports/driven"
)

// Ensure Persistence implements the interface.
var _ driven.Persistence = (*Persistence)(nil)

// Persistence is an in-memory implementation of driven.Persistence for testing.
// Locks are per-directory mutexes, so they exclude goroutines that share the
// same Persistence value rather than other processes.
type Persistence struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool
	locks map[string]*sync.Mutex

	writes int
}

// NewPersistence creates an empty in-memory filesystem.
func NewPersistence() *Persistence {
	return &Persistence{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
		locks: make(map[string]*sync.Mutex),
	}
}

// Exists reports whether a file or directory exists at path.
func (p *Persistence) Exists(path string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	path = filepath.Clean(path)
	_, isFile := p.files[path]
	return isFile || p.dirs[path], nil
}

// ReadFile returns a copy of the file content.
func (p *Persistence) ReadFile(path string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	data, ok := p.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// WriteFile replaces the file content. The parent directory must exist.
func (p *Persistence) WriteFile(path string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	path = filepath.Clean(path)
	if dir := filepath.Dir(path); !p.dirs[dir] {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	p.files[path] = append([]byte(nil), data...)
	p.writes++
	return nil
}

// MkdirAll records path and all of its parents as directories.
func (p *Persistence) MkdirAll(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for dir := filepath.Clean(path); ; dir = filepath.Dir(dir) {
		p.dirs[dir] = true
		if parent := filepath.Dir(dir); parent == dir {
			return nil
		}
	}
}

// WithExclusiveLock runs fn while holding the mutex for dir.
func (p *Persistence) WithExclusiveLock(dir string, fn func() error) error {
	p.mu.Lock()
	dir = filepath.Clean(dir)
	lock, ok := p.locks[dir]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[dir] = lock
	}
	p.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn()
}

// SetFile seeds a file and its parent directories.
func (p *Persistence) SetFile(path string, data []byte) {
	_ = p.MkdirAll(filepath.Dir(path))
	p.mu.Lock()
	defer p.mu.Unlock()
	p.files[filepath.Clean(path)] = append([]byte(nil), data...)
}

// File returns the stored content of path and whether it exists.
func (p *Persistence) File(path string) ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	data, ok := p.files[filepath.Clean(path)]
	return append([]byte(nil), data...), ok
}

// Writes returns how many WriteFile calls succeeded.
func (p *Persistence) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}
