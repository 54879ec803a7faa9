package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-sources/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-sources/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := service.GetDefaults()
	assert.Equal(t, defaults, *settings)
	assert.Equal(t, "collection-sources.json", settings.Storage.Path)
	assert.True(t, settings.Storage.AtomicWrite)
	assert.False(t, settings.Verbose)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.path", "/srv/sources.json")
	_ = store.Set("storage.atomic_write", false)
	_ = store.Set("log.verbose", true)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, "/srv/sources.json", settings.Storage.Path)
	assert.False(t, settings.Storage.AtomicWrite)
	assert.True(t, settings.Verbose)
}

func TestSettingsService_Get_EmptyPathFallsBack(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.path", "")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, "collection-sources.json", settings.Storage.Path)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	err := service.Save(&domain.AppSettings{
		Storage: domain.StorageSettings{Path: "/tmp/s.json", AtomicWrite: false},
		Verbose: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/s.json", store.GetString("storage.path"))
	val, ok := store.Get("storage.atomic_write")
	assert.True(t, ok)
	assert.Equal(t, false, val)
	assert.True(t, store.GetBool("log.verbose"))

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.False(t, retrieved.Storage.AtomicWrite)
}
