package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(settingsCmd.Commands()))
	for _, cmd := range settingsCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "show")
	assert.Contains(t, names, "set")
	assert.Contains(t, names, "reset")
}

func TestSettingsShow_Defaults(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Storage]")
	assert.Contains(t, out, "Path: collection-sources.json")
	assert.Contains(t, out, "Atomic write: yes")
	assert.Contains(t, out, "Verbose: no")
}

func TestSettingsSet(t *testing.T) {
	env := setupServices(t)

	_, err := execute(t, "settings", "set", "storage.path", "/srv/sources.json")
	require.NoError(t, err)
	_, err = execute(t, "settings", "set", "storage.atomic_write", "false")
	require.NoError(t, err)
	out, err := execute(t, "settings", "set", "log.verbose", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "Set log.verbose = true")

	assert.Equal(t, "/srv/sources.json", env.configStore.GetString("storage.path"))
	assert.False(t, env.configStore.GetBool("storage.atomic_write"))
	assert.True(t, env.configStore.GetBool("log.verbose"))
}

func TestSettingsSet_Errors(t *testing.T) {
	setupServices(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown key", []string{"settings", "set", "search.mode", "x"}, "unknown setting"},
		{"bad bool", []string{"settings", "set", "log.verbose", "maybe"}, "invalid value"},
		{"empty path", []string{"settings", "set", "storage.path", ""}, "cannot be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSettingsReset(t *testing.T) {
	env := setupServices(t)

	_, err := execute(t, "settings", "set", "storage.atomic_write", "false")
	require.NoError(t, err)

	out, err := execute(t, "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "restored to defaults")
	assert.True(t, env.configStore.GetBool("storage.atomic_write"))
}
