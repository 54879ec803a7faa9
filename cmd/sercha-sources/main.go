// Command sercha-sources manages the ordered list of collection sources.
package main

import (
	"errors"
	"os"

	configfile "github.com/custodia-labs/sercha-sources/internal/adapters/driven/config/file"
	storagefile "github.com/custodia-labs/sercha-sources/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/sercha-sources/internal/adapters/driving/cli"
	"github.com/custodia-labs/sercha-sources/internal/core/services"
	"github.com/custodia-labs/sercha-sources/internal/logger"
)

func main() {
	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the file-backed adapters into the services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := configfile.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}
	if settings.Verbose {
		logger.SetVerbose(true)
	}

	path := settings.Storage.Path
	if opts.File != "" {
		path = opts.File
	}
	if path == "" {
		return nil, errors.New("no collection sources file configured")
	}
	logger.Debug("collection sources file: %s (atomic write: %t)", path, settings.Storage.AtomicWrite)

	persistence := storagefile.NewPersistence(storagefile.WithAtomicWrite(settings.Storage.AtomicWrite))
	collection, err := services.NewCollectionService(persistence, path)
	if err != nil {
		return nil, err
	}

	return &cli.Services{
		Collection: collection,
		Settings:   settingsService,
		Watcher:    storagefile.NewWatcher(collection.Path()),
		Close:      collection.Close,
	}, nil
}
