package services

import (
	"path/filepath"

	"github.com/custodia-labs/sercha-sources/internal/core/domain"
	"github.com/custodia-labs/sercha-sources/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-sources/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStoragePath        = "storage.path"
	keyStorageAtomicWrite = "storage.atomic_write"
	keyLogVerbose         = "log.verbose"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing keys fall back to defaults rooted next to the config file.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := s.GetDefaults()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Path:        s.getString(keyStoragePath, defaults.Storage.Path),
			AtomicWrite: s.getBool(keyStorageAtomicWrite, defaults.Storage.AtomicWrite),
		},
		Verbose: s.getBool(keyLogVerbose, defaults.Verbose),
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyStoragePath, settings.Storage.Path); err != nil {
		return err
	}
	if err := s.configStore.Set(keyStorageAtomicWrite, settings.Storage.AtomicWrite); err != nil {
		return err
	}
	return s.configStore.Set(keyLogVerbose, settings.Verbose)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	dir := "."
	if p := s.configStore.Path(); p != "" {
		dir = filepath.Dir(p)
	}
	return domain.DefaultAppSettings(dir)
}

func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

func (s *SettingsService) getBool(key string, def bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetBool(key)
}
