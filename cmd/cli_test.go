package cmd

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunerlab/pandora-cli/internal/crypt"
	"github.com/tunerlab/pandora-cli/internal/domain"
)

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestAccountSetRequiresCredentialFlags(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "account", "set", "--username", "listener@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"password\" not set")
}

func TestAccountSetRejectsUnknownDevice(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(),
		"account", "set",
		"--username", "listener@example.com",
		"--password", "hunter2",
		"--device", "toaster",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown device kind")
}

func TestAccountSetThenShow(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home,
		"account", "set",
		"--username", "listener@example.com",
		"--password", "hunter2",
	)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "account", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "listener@example.com")
	assert.Contains(t, stdout, "android")
	assert.NotContains(t, stdout, "hunter2")
}

func TestAccountShowWithoutStoredListener(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "account", "show")
	require.ErrorIs(t, err, domain.ErrListenerNotFound)
}

func TestAccountRemoveDeletesRecordAndSecret(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home,
		"account", "set",
		"--username", "listener@example.com",
		"--password", "hunter2",
	)
	require.NoError(t, err)

	secretPath := filepath.Join(home, ".pandora", "secrets", "pandora", "listener", "password")
	_, err = os.Stat(secretPath)
	require.NoError(t, err, "password must land in the file backend under the test home")

	_, _, err = executeCLI(t, home, "account", "remove")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "account", "show")
	require.ErrorIs(t, err, domain.ErrListenerNotFound)

	_, err = os.Stat(secretPath)
	assert.True(t, os.IsNotExist(err))
}

func TestLoginRunsHandshake(t *testing.T) {
	server := newFakeService(t)
	defer server.Close()

	home := t.TempDir()
	t.Setenv("PANDORA_ENDPOINT", server.URL+"/services/json")

	_, _, err := executeCLI(t, home,
		"account", "set",
		"--username", "listener@example.com",
		"--password", "hunter2",
	)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "login")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in (user id 7)")
}

func TestStationsCommandRendersList(t *testing.T) {
	server := newFakeService(t)
	defer server.Close()

	home := t.TempDir()
	t.Setenv("PANDORA_ENDPOINT", server.URL+"/services/json")

	_, _, err := executeCLI(t, home,
		"account", "set",
		"--username", "listener@example.com",
		"--password", "hunter2",
	)
	require.NoError(t, err)

	stdout, stderr, err := executeCLI(t, home, "stations")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Jazz")
	assert.Contains(t, stdout, "st-jazz")
	assert.Contains(t, stderr, "Fetching stations")
}

func TestSearchCommandRendersMatches(t *testing.T) {
	server := newFakeService(t)
	defer server.Close()

	home := t.TempDir()
	t.Setenv("PANDORA_ENDPOINT", server.URL+"/services/json")

	_, _, err := executeCLI(t, home,
		"account", "set",
		"--username", "listener@example.com",
		"--password", "hunter2",
	)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "search", "charles", "mingus")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Search: charles mingus")
	assert.Contains(t, stdout, "Charles Mingus")
	assert.Contains(t, stdout, "R123")
}

func TestPlaylistCommandRejectsUnknownAudioFormat(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "playlist", "st-jazz", "--audio-format", "HTTP_512_FLAC")
	require.ErrorIs(t, err, domain.ErrUnsupportedAudioFormat)
}

func TestCommandsFailWithoutStoredListener(t *testing.T) {
	server := newFakeService(t)
	defer server.Close()

	home := t.TempDir()
	t.Setenv("PANDORA_ENDPOINT", server.URL+"/services/json")

	_, _, err := executeCLI(t, home, "stations")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pandora account set")
}

// newFakeService stands in for the JSON API: it routes on the method
// query argument and answers with canned envelopes.
func newFakeService(t *testing.T) *httptest.Server {
	t.Helper()

	profile := domain.DefaultProfile()
	encryptedSyncTime := crypt.Encrypt(profile.DecryptKey, "salt1477631903")

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("method") {
		case "auth.partnerLogin":
			_, _ = fmt.Fprintf(w, `{"stat":"ok","result":{"partnerId":"42","partnerAuthToken":"partner-token","syncTime":"%s"}}`, encryptedSyncTime)
		case "auth.userLogin":
			assert.Equal(t, "partner-token", r.URL.Query().Get("auth_token"))
			_, _ = fmt.Fprint(w, `{"stat":"ok","result":{"userId":"7","userAuthToken":"user-token","canListen":true}}`)
		case "user.getStationList":
			assert.Equal(t, "user-token", r.URL.Query().Get("auth_token"))
			_, _ = fmt.Fprint(w, `{"stat":"ok","result":{"stations":[{"stationToken":"st-jazz","stationName":"Jazz"}],"checksum":"abc"}}`)
		case "music.search":
			_, _ = fmt.Fprint(w, `{"stat":"ok","result":{"artists":[{"musicToken":"R123","artistName":"Charles Mingus"}],"songs":[]}}`)
		default:
			_, _ = fmt.Fprint(w, `{"stat":"fail","code":14,"message":"unknown method"}`)
		}
	}))
}

// executeCLI runs the root command against a throwaway home directory.
// The listener record, the file secret backend, and the pass store all
// resolve under that home, so the tests never read or write the real
// user's password store even when pass(1) is installed.
func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
