package application

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunerlab/pandora-cli/internal/crypt"
	"github.com/tunerlab/pandora-cli/internal/domain"
)

const endpoint = "https://tuner.example.com/services/json"

func decodeBody(t *testing.T, body string) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	return decoded
}

func queryArgs(t *testing.T, envelopeURL string) url.Values {
	t.Helper()
	parsed, err := url.Parse(envelopeURL)
	require.NoError(t, err)
	return parsed.Query()
}

func TestBuildEnvelopeInjectsSessionState(t *testing.T) {
	tokens := domain.TokensSnapshot{
		EncryptKey:       "key",
		PartnerID:        "42",
		PartnerAuthToken: "partner-token",
		UserID:           "7",
		UserAuthToken:    "user-token",
		SyncTime:         1477631903,
		HasSyncTime:      true,
	}

	envelope, err := BuildEnvelope(endpoint, "user.getStationList", GetStationListRequest{IncludeStationArtURL: true}, nil, false, tokens)
	require.NoError(t, err)

	assert.Equal(t, "user.getStationList", envelope.Method)
	assert.True(t, strings.HasPrefix(envelope.URL, endpoint+"?"))

	args := queryArgs(t, envelope.URL)
	assert.Equal(t, "user.getStationList", args.Get("method"))
	assert.Equal(t, "user-token", args.Get("auth_token"), "user token takes precedence in query args")
	assert.Equal(t, "42", args.Get("partner_id"))
	assert.Equal(t, "7", args.Get("user_id"))

	body := decodeBody(t, envelope.Body)
	assert.Equal(t, true, body["includeStationArtUrl"])
	assert.Equal(t, "partner-token", body["partnerAuthToken"])
	assert.Equal(t, "user-token", body["userAuthToken"])
	assert.Equal(t, float64(1477631903), body["syncTime"])
}

func TestBuildEnvelopeNilParams(t *testing.T) {
	envelope, err := BuildEnvelope(endpoint, "test.checkLicensing", nil, nil, false, domain.TokensSnapshot{})
	require.NoError(t, err)

	assert.Equal(t, "{}", envelope.Body)

	args := queryArgs(t, envelope.URL)
	assert.Equal(t, "test.checkLicensing", args.Get("method"))
	assert.False(t, args.Has("auth_token"))
	assert.False(t, args.Has("partner_id"))
	assert.False(t, args.Has("user_id"))
}

func TestBuildEnvelopeNeverOverwritesCallerFields(t *testing.T) {
	tokens := domain.TokensSnapshot{
		PartnerAuthToken: "session-token",
		SyncTime:         999,
		HasSyncTime:      true,
	}

	params := map[string]any{
		"partnerAuthToken": "caller-token",
		"syncTime":         int64(1),
	}
	options := map[string]any{
		"syncTime": int64(2),
		"extra":    "kept",
	}

	envelope, err := BuildEnvelope(endpoint, "auth.userLogin", params, options, false, tokens)
	require.NoError(t, err)

	body := decodeBody(t, envelope.Body)
	assert.Equal(t, "caller-token", body["partnerAuthToken"])
	assert.Equal(t, float64(1), body["syncTime"])
	assert.Equal(t, "kept", body["extra"])
}

func TestBuildEnvelopeEncryptsBody(t *testing.T) {
	const key = "6#26FRL$ZWD"
	tokens := domain.TokensSnapshot{EncryptKey: key, PartnerAuthToken: "partner-token"}

	envelope, err := BuildEnvelope(endpoint, "auth.userLogin", UserLoginRequest{LoginType: "user", Username: "listener", Password: "pw"}, nil, true, tokens)
	require.NoError(t, err)

	assert.Regexp(t, "^[0-9a-f]+$", envelope.Body)

	decrypted := crypt.Decrypt(key, envelope.Body)
	body := decodeBody(t, string(decrypted))
	assert.Equal(t, "listener", body["username"])
	assert.Equal(t, "partner-token", body["partnerAuthToken"])
}

func TestBuildEnvelopeRejectsNonObjectParams(t *testing.T) {
	_, err := BuildEnvelope(endpoint, "music.search", []string{"not", "an", "object"}, nil, false, domain.TokensSnapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON object")
}

func TestBuildEnvelopeQueryArgsAreSorted(t *testing.T) {
	tokens := domain.TokensSnapshot{
		PartnerID:        "42",
		PartnerAuthToken: "p",
		UserID:           "7",
		UserAuthToken:    "u",
	}

	envelope, err := BuildEnvelope(endpoint, "station.getPlaylist", nil, nil, false, tokens)
	require.NoError(t, err)

	query := strings.TrimPrefix(envelope.URL, endpoint+"?")
	keys := make([]string, 0, 4)
	for _, pair := range strings.Split(query, "&") {
		keys = append(keys, strings.SplitN(pair, "=", 2)[0])
	}
	assert.Equal(t, []string{"auth_token", "method", "partner_id", "user_id"}, keys)
}
