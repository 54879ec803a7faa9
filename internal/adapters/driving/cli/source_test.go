package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-sources/internal/core/domain"
)

func listedURLs(t *testing.T, env *testEnv) []string {
	t.Helper()
	sources, err := env.collection.List(context.Background())
	require.NoError(t, err)
	urls := make([]string, 0, len(sources))
	for _, s := range sources {
		urls = append(urls, s.URL.String())
	}
	return urls
}

func TestListCmd_Empty(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No collection sources configured.")
}

func TestListCmd_PrintsInOrder(t *testing.T) {
	env := setupServices(t)
	env.persistence.SetFile(testStorePath, []byte(`{"data":[
		{"type":"json","value":"https://b.example/c.json"},
		{"type":"json","value":"https://a.example/c.json"}]}`))

	out, err := execute(t, "list")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  0  json  https://b.example/c.json", lines[0])
	assert.Equal(t, "  1  json  https://a.example/c.json", lines[1])
}

func TestListCmd_RejectsArgs(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "list", "extra")

	assert.Error(t, err)
}

func TestListCmd_DecodeError(t *testing.T) {
	env := setupServices(t)
	env.persistence.SetFile(testStorePath, []byte(`{not json`))

	_, err := execute(t, "list")

	require.Error(t, err)
	var decodeErr *domain.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestAddCmd_Appends(t *testing.T) {
	env := setupServices(t)

	out, err := execute(t, "add", "https://a.example/c.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Added json https://a.example/c.json")

	_, err = execute(t, "add", "https://b.example/c.json")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example/c.json", "https://b.example/c.json"}, listedURLs(t, env))
}

func TestAddCmd_Order(t *testing.T) {
	env := setupServices(t)

	for _, u := range []string{"https://a.example", "https://b.example"} {
		_, err := execute(t, "add", u)
		require.NoError(t, err)
	}
	_, err := execute(t, "add", "--order", "0", "https://c.example")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://c.example", "https://a.example", "https://b.example"}, listedURLs(t, env))
}

func TestAddCmd_OrderDoesNotLeakBetweenRuns(t *testing.T) {
	env := setupServices(t)

	_, err := execute(t, "add", "--order", "0", "https://a.example")
	require.NoError(t, err)
	_, err = execute(t, "add", "https://b.example")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, listedURLs(t, env))
}

func TestAddCmd_ExistingSourceMoves(t *testing.T) {
	env := setupServices(t)

	for _, u := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		_, err := execute(t, "add", u)
		require.NoError(t, err)
	}
	_, err := execute(t, "add", "https://a.example")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://b.example", "https://c.example", "https://a.example"}, listedURLs(t, env))
}

func TestAddCmd_UnknownType(t *testing.T) {
	env := setupServices(t)

	_, err := execute(t, "add", "--type", "xml", "https://a.example")

	require.Error(t, err)
	var typeErr *domain.UnknownTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "xml", typeErr.Type)
	assert.Zero(t, env.persistence.Writes())
}

func TestAddCmd_RelativeURL(t *testing.T) {
	env := setupServices(t)

	_, err := execute(t, "add", "c.json")

	require.Error(t, err)
	var urlErr *domain.InvalidURLError
	assert.ErrorAs(t, err, &urlErr)
	assert.Zero(t, env.persistence.Writes())
}

func TestAddCmd_RequiresOneArg(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "add")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestRemoveCmd(t *testing.T) {
	env := setupServices(t)

	for _, u := range []string{"https://a.example", "https://b.example"} {
		_, err := execute(t, "add", u)
		require.NoError(t, err)
	}

	out, err := execute(t, "remove", "https://a.example")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed json https://a.example")
	assert.Equal(t, []string{"https://b.example"}, listedURLs(t, env))

	_, err = execute(t, "remove", "https://missing.example")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://b.example"}, listedURLs(t, env))
}

func TestMoveCmd(t *testing.T) {
	env := setupServices(t)

	for _, u := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		_, err := execute(t, "add", u)
		require.NoError(t, err)
	}

	out, err := execute(t, "move", "https://c.example", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved json https://c.example")
	assert.Equal(t, []string{"https://c.example", "https://a.example", "https://b.example"}, listedURLs(t, env))

	_, err = execute(t, "move", "https://c.example", "99")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://c.example"}, listedURLs(t, env))
}

func TestMoveCmd_InvalidPosition(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "move", "https://a.example", "first")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid position")
}

func TestExistsCmd(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "add", "https://a.example")
	require.NoError(t, err)

	out, err := execute(t, "exists", "https://a.example")
	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(out))

	out, err = execute(t, "exists", "https://b.example")
	require.NoError(t, err)
	assert.Equal(t, "false", strings.TrimSpace(out))
}
