// Package driving defines the interfaces the CLI uses to reach core services.
// These are the "driving" ports in hexagonal architecture terminology.
//
// CollectionService is the storage gateway for collection sources;
// SettingsService reads and writes config.toml.
//
// Implementations live in internal/core/services.
package driving
