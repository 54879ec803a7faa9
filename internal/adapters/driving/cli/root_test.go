package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-sources/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-sources/internal/core/services"
)

const testStorePath = "/data/collection-sources.json"

// fakeWatcher calls onChange once per entry in changes, running the entry first.
type fakeWatcher struct {
	changes []func()
	err     error
}

func (w *fakeWatcher) Watch(_ context.Context, onChange func()) error {
	for _, change := range w.changes {
		change()
		onChange()
	}
	return w.err
}

type testEnv struct {
	collection  *services.CollectionService
	settings    *services.SettingsService
	persistence *memory.Persistence
	configStore *memory.ConfigStore
	watcher     *fakeWatcher
}

// setupServices installs memory-backed services and resets global state on cleanup.
func setupServices(t *testing.T) *testEnv {
	t.Helper()

	persistence := memory.NewPersistence()
	collection, err := services.NewCollectionService(persistence, testStorePath)
	require.NoError(t, err)
	configStore := memory.NewConfigStore()

	env := &testEnv{
		collection:  collection,
		settings:    services.NewSettingsService(configStore),
		persistence: persistence,
		configStore: configStore,
		watcher:     &fakeWatcher{},
	}
	SetServices(&Services{
		Collection: env.collection,
		Settings:   env.settings,
		Watcher:    env.watcher,
		Close:      env.collection.Close,
	})
	t.Cleanup(func() {
		_ = collection.Close()
		active = nil
		bootstrap = nil
	})
	return env
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag in the tree to its default so state from one
// Execute does not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "sercha-sources", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"list", "add", "remove", "move", "exists", "watch", "settings", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config-dir", "file", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_BootstrapReceivesFlags(t *testing.T) {
	t.Cleanup(func() {
		active = nil
		bootstrap = nil
	})

	var got Options
	persistence := memory.NewPersistence()
	SetBootstrap(func(o Options) (*Services, error) {
		got = o
		collection, err := services.NewCollectionService(persistence, o.File)
		if err != nil {
			return nil, err
		}
		t.Cleanup(func() { _ = collection.Close() })
		return &Services{Collection: collection}, nil
	})

	out, err := execute(t, "--config-dir", "/etc/sercha", "--file", "/tmp/s.json", "list")

	require.NoError(t, err)
	assert.Equal(t, "/etc/sercha", got.ConfigDir)
	assert.Equal(t, "/tmp/s.json", got.File)
	assert.False(t, got.Verbose)
	assert.Contains(t, out, "No collection sources configured.")
}

func TestRootCmd_BootstrapError(t *testing.T) {
	t.Cleanup(func() {
		active = nil
		bootstrap = nil
	})
	SetBootstrap(func(Options) (*Services, error) {
		return nil, errors.New("boom")
	})

	_, err := execute(t, "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRootCmd_ErrorsWithoutServices(t *testing.T) {
	active = nil
	bootstrap = nil

	_, err := execute(t, "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
