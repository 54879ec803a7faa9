package driven

// Persistence is the filesystem collaborator behind the collection store.
// Every method is fallible; errors are returned unwrapped and the core
// classifies them.
type Persistence interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// ReadFile returns the whole content of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the whole content of path with data.
	WriteFile(path string, data []byte) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// WithExclusiveLock runs fn while holding an exclusive cross-process
	// lock scoped to dir. It blocks until the lock is granted and releases
	// it on every exit path. A failure to acquire the lock is returned as a
	// *domain.LockError; otherwise fn's error is returned unchanged.
	WithExclusiveLock(dir string, fn func() error) error
}
