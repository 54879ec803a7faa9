package domain

import "path/filepath"

// DefaultSourcesFileName is the storage file name inside the config directory.
const DefaultSourcesFileName = "collection-sources.json"

// StorageSettings holds where and how the collection source list is persisted.
type StorageSettings struct {
	// Path is the storage file. Its parent directory is the lock scope.
	Path string

	// AtomicWrite replaces the file via temp file + rename instead of
	// overwriting it in place.
	AtomicWrite bool
}

// AppSettings is the full application configuration.
type AppSettings struct {
	Storage StorageSettings

	// Verbose enables debug logging to stderr.
	Verbose bool
}

// DefaultAppSettings returns settings rooted at configDir.
func DefaultAppSettings(configDir string) AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Path:        filepath.Join(configDir, DefaultSourcesFileName),
			AtomicWrite: true,
		},
	}
}
