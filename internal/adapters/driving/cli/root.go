// Package cli implements the sercha-sources command-line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-sources/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-sources/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// StoreWatcher notifies about external changes to the storage file.
type StoreWatcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// Options are the global flags passed to Bootstrap.
type Options struct {
	// ConfigDir holds config.toml. Empty means ~/.sercha.
	ConfigDir string
	// File overrides the storage file path from the settings.
	File string
	// Verbose enables debug logging.
	Verbose bool
}

// Services holds what the commands drive.
type Services struct {
	Collection driving.CollectionService
	Settings   driving.SettingsService
	Watcher    StoreWatcher
	// Close releases the services. May be nil.
	Close func() error
}

// Bootstrap builds the services from the global flags.
type Bootstrap func(opts Options) (*Services, error)

var (
	bootstrap Bootstrap
	active    *Services
	opts      Options
)

var rootCmd = &cobra.Command{
	Use:   "sercha-sources",
	Short: "Manage the ordered list of collection sources",
	Long: `Manage the ordered list of collection sources.

Sources are stored as JSON in a single file. Every change rewrites the whole
file under an exclusive lock, so several sercha processes can share it safely.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if opts.Verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.sercha)")
	rootCmd.PersistentFlags().StringVar(&opts.File, "file", "", "collection sources file (overrides storage.path)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print debug logs to stderr")
}

// SetBootstrap sets the function that builds services on first use.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs ready-made services, bypassing Bootstrap.
func SetServices(s *Services) {
	active = s
}

// Execute runs the root command and releases the services afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if active != nil && active.Close != nil {
		if closeErr := active.Close(); closeErr != nil {
			logger.Warn("close services: %v", closeErr)
		}
	}
	return err
}

func ensureServices() error {
	if active != nil || bootstrap == nil {
		return nil
	}
	s, err := bootstrap(opts)
	if err != nil {
		return err
	}
	active = s
	return nil
}

func collectionService() (driving.CollectionService, error) {
	if err := ensureServices(); err != nil {
		return nil, err
	}
	if active == nil || active.Collection == nil {
		return nil, errors.New("collection service not configured")
	}
	return active.Collection, nil
}

func storeWatcher() (StoreWatcher, error) {
	if err := ensureServices(); err != nil {
		return nil, err
	}
	if active == nil || active.Watcher == nil {
		return nil, errors.New("watcher not configured")
	}
	return active.Watcher, nil
}

func settingsService() (driving.SettingsService, error) {
	if err := ensureServices(); err != nil {
		return nil, err
	}
	if active == nil || active.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return active.Settings, nil
}
