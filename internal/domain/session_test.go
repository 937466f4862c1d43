package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunerlab/pandora-cli/internal/crypt"
	"github.com/tunerlab/pandora-cli/internal/domain"
)

func TestSessionTokensLifecycle(t *testing.T) {
	tokens := domain.NewSessionTokens("encrypt-key", "decrypt-key")

	assert.False(t, tokens.HasPartner())
	assert.False(t, tokens.HasUser())

	tokens.UpdatePartner("42", "partner-token", "")
	assert.True(t, tokens.HasPartner())
	assert.Equal(t, "42", tokens.PartnerID())
	assert.Equal(t, "partner-token", tokens.PartnerAuthToken())
	_, ok := tokens.SyncTime()
	assert.False(t, ok, "empty sync time field must not establish a sync time")

	tokens.UpdateUser("1234567", "user-token")
	assert.True(t, tokens.HasUser())
	assert.Equal(t, "1234567", tokens.UserID())
	assert.Equal(t, "user-token", tokens.UserAuthToken())
}

func TestUpdatePartnerDecryptsSyncTime(t *testing.T) {
	const key = "R=U!LH$O2B#"

	// Real responses prefix the epoch with four bytes of salt that must
	// be skipped before parsing.
	encrypted := crypt.Encrypt(key, "salt1477631903")

	tokens := domain.NewSessionTokens("unused", key)
	tokens.UpdatePartner("42", "partner-token", encrypted)

	now := time.Now()
	syncTime, ok := tokens.SyncTimeAt(now)
	require.True(t, ok)
	assert.Equal(t, int64(1477631903), syncTime)
}

func TestUpdatePartnerUnparseableSyncTimeFallsBackToZero(t *testing.T) {
	const key = "R=U!LH$O2B#"
	encrypted := crypt.Encrypt(key, "saltnot-a-number")

	tokens := domain.NewSessionTokens("unused", key)
	tokens.UpdatePartner("42", "partner-token", encrypted)

	syncTime, ok := tokens.SyncTimeAt(time.Now())
	require.True(t, ok)
	assert.Zero(t, syncTime)
}

func TestSyncTimeProjection(t *testing.T) {
	captured := time.Date(2016, 10, 28, 6, 0, 0, 0, time.UTC)

	tokens := domain.NewSessionTokens("e", "d")
	tokens.SetSyncTimeAt(1477631903, captured)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int64
	}{
		{"at capture", 0, 1477631903},
		{"sub-second truncates", 900 * time.Millisecond, 1477631903},
		{"whole seconds", 10 * time.Second, 1477631913},
		{"minutes later", 5 * time.Minute, 1477632203},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tokens.SyncTimeAt(captured.Add(tc.elapsed))
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClearPartnerDropsSyncTime(t *testing.T) {
	tokens := domain.NewSessionTokens("e", "d")
	tokens.UpdatePartner("42", "partner-token", "")
	tokens.UpdateUser("7", "user-token")
	tokens.SetSyncTime(1477631903)

	tokens.ClearPartner()

	assert.False(t, tokens.HasPartner())
	assert.Empty(t, tokens.PartnerID())
	_, ok := tokens.SyncTime()
	assert.False(t, ok)
	assert.True(t, tokens.HasUser(), "clearing partner state must not touch user state")
}

func TestClearUserKeepsSyncTime(t *testing.T) {
	tokens := domain.NewSessionTokens("e", "d")
	tokens.UpdatePartner("42", "partner-token", "")
	tokens.UpdateUser("7", "user-token")
	tokens.SetSyncTime(1477631903)

	tokens.ClearUser()

	assert.False(t, tokens.HasUser())
	assert.True(t, tokens.HasPartner())
	_, ok := tokens.SyncTime()
	assert.True(t, ok)
}

func TestSnapshotAuthTokenPrefersUser(t *testing.T) {
	tokens := domain.NewSessionTokens("e", "d")

	_, ok := tokens.Snapshot().AuthToken()
	assert.False(t, ok)

	tokens.UpdatePartner("42", "partner-token", "")
	token, ok := tokens.Snapshot().AuthToken()
	require.True(t, ok)
	assert.Equal(t, "partner-token", token)

	tokens.UpdateUser("7", "user-token")
	token, ok = tokens.Snapshot().AuthToken()
	require.True(t, ok)
	assert.Equal(t, "user-token", token)
}
