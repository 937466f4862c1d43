package domain

import (
	"strconv"
	"time"

	"github.com/tunerlab/pandora-cli/internal/crypt"
)

// SessionTokens holds the mutable state of one API session: the profile's
// encryption keys, the partner and user identity/token pairs, and the
// server clock offset. It performs no I/O of its own.
//
// A SessionTokens instance is not safe for concurrent mutation; callers
// that share one across goroutines must serialize access (the application
// session service does this behind its own mutex).
type SessionTokens struct {
	encryptKey string
	decryptKey string

	partnerID        string
	partnerAuthToken string

	userID        string
	userAuthToken string

	// syncTimeBase and syncTimeCapturedAt are always set (or absent)
	// together: the projected server time is base plus whatever wall time
	// elapsed locally since the capture instant.
	syncTimeBase       int64
	syncTimeCapturedAt time.Time
	syncTimeSet        bool
}

// NewSessionTokens returns session state with only the key pair populated.
// The keys are needed before authentication begins and never change for
// the life of the session.
func NewSessionTokens(encryptKey, decryptKey string) *SessionTokens {
	return &SessionTokens{
		encryptKey: encryptKey,
		decryptKey: decryptKey,
	}
}

func (s *SessionTokens) EncryptKey() string { return s.encryptKey }
func (s *SessionTokens) DecryptKey() string { return s.decryptKey }

func (s *SessionTokens) PartnerID() string        { return s.partnerID }
func (s *SessionTokens) PartnerAuthToken() string { return s.partnerAuthToken }
func (s *SessionTokens) UserID() string           { return s.userID }
func (s *SessionTokens) UserAuthToken() string    { return s.userAuthToken }

// HasPartner reports whether a partner handshake has completed.
func (s *SessionTokens) HasPartner() bool { return s.partnerAuthToken != "" }

// HasUser reports whether a user handshake has completed.
func (s *SessionTokens) HasUser() bool { return s.userAuthToken != "" }

// UpdatePartner records the identity and token from a partner login and
// derives the server clock base from the encrypted sync time field.
//
// The first four decrypted bytes are garbage (most likely a salt meant to
// make key recovery harder) and are skipped; the remainder is the server
// time in decimal seconds. An unparseable value falls back to 0 rather
// than failing the login.
func (s *SessionTokens) UpdatePartner(partnerID, partnerAuthToken, encryptedSyncTime string) {
	s.partnerID = partnerID
	s.partnerAuthToken = partnerAuthToken

	if encryptedSyncTime == "" {
		return
	}

	raw := crypt.Decrypt(s.decryptKey, encryptedSyncTime)
	if len(raw) > 4 {
		raw = raw[4:]
	} else {
		raw = nil
	}

	base, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		base = 0
	}
	s.SetSyncTime(base)
}

// UpdateUser records the identity and token from a user login.
func (s *SessionTokens) UpdateUser(userID, userAuthToken string) {
	s.userID = userID
	s.userAuthToken = userAuthToken
}

// SetSyncTime stores value as the server time base and captures the
// current instant as the local reference point.
func (s *SessionTokens) SetSyncTime(value int64) {
	s.SetSyncTimeAt(value, time.Now())
}

// SetSyncTimeAt is SetSyncTime with an explicit capture instant.
func (s *SessionTokens) SetSyncTimeAt(value int64, now time.Time) {
	s.syncTimeBase = value
	s.syncTimeCapturedAt = now
	s.syncTimeSet = true
}

// SyncTime returns the projected current server time in whole seconds,
// or false if no sync time has been established.
func (s *SessionTokens) SyncTime() (int64, bool) {
	return s.SyncTimeAt(time.Now())
}

// SyncTimeAt projects the server time as of now. It is a pure function of
// the captured base/instant pair, which keeps it testable without a clock
// dependency.
func (s *SessionTokens) SyncTimeAt(now time.Time) (int64, bool) {
	if !s.syncTimeSet {
		return 0, false
	}

	elapsed := int64(now.Sub(s.syncTimeCapturedAt) / time.Second)
	return s.syncTimeBase + elapsed, true
}

// ClearPartner drops the partner identity/token pair and the sync time;
// a server clock base is meaningless without a valid partner session.
func (s *SessionTokens) ClearPartner() {
	s.partnerID = ""
	s.partnerAuthToken = ""
	s.clearSyncTime()
}

// ClearUser drops the user identity/token pair. Partner state is untouched.
func (s *SessionTokens) ClearUser() {
	s.userID = ""
	s.userAuthToken = ""
}

func (s *SessionTokens) clearSyncTime() {
	s.syncTimeBase = 0
	s.syncTimeCapturedAt = time.Time{}
	s.syncTimeSet = false
}

// TokensSnapshot is a read-only copy of the session state handed to the
// request envelope builder, so that building a request can never mutate
// the live tokens. SyncTime carries the projected value as of the snapshot.
type TokensSnapshot struct {
	EncryptKey       string
	PartnerID        string
	PartnerAuthToken string
	UserID           string
	UserAuthToken    string
	SyncTime         int64
	HasSyncTime      bool
}

// Snapshot captures the current token state, projecting the sync time.
func (s *SessionTokens) Snapshot() TokensSnapshot {
	return s.SnapshotAt(time.Now())
}

// SnapshotAt is Snapshot with an explicit projection instant.
func (s *SessionTokens) SnapshotAt(now time.Time) TokensSnapshot {
	syncTime, ok := s.SyncTimeAt(now)
	return TokensSnapshot{
		EncryptKey:       s.encryptKey,
		PartnerID:        s.partnerID,
		PartnerAuthToken: s.partnerAuthToken,
		UserID:           s.userID,
		UserAuthToken:    s.userAuthToken,
		SyncTime:         syncTime,
		HasSyncTime:      ok,
	}
}

// AuthToken resolves the token used in query arguments: the user token
// when present, otherwise the partner token.
func (t TokensSnapshot) AuthToken() (string, bool) {
	if t.UserAuthToken != "" {
		return t.UserAuthToken, true
	}
	if t.PartnerAuthToken != "" {
		return t.PartnerAuthToken, true
	}
	return "", false
}
