package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tunerlab/pandora-cli/internal/domain"
	"github.com/tunerlab/pandora-cli/internal/ports"
)

// SessionService owns one authenticated session against the service: the
// credential profile, the live token state, and the transport used to
// deliver calls. All exported methods are safe for concurrent use; token
// merges and clears are serialized behind a single mutex so a partner
// login and a user login can never interleave their updates.
type SessionService struct {
	mu          sync.Mutex
	profile     domain.Profile
	endpointURL string
	tokens      *domain.SessionTokens
	transport   ports.Transport
	clock       ports.Clock
}

// NewSessionService starts a fresh session for the given profile. No
// network traffic happens here; the first call that needs credentials
// should be preceded by PartnerLogin and UserLogin (or Login).
func NewSessionService(profile domain.Profile, transport ports.Transport) *SessionService {
	return NewSessionServiceAt(profile, profile.EndpointURL(), transport)
}

// NewSessionServiceAt is NewSessionService with an explicit endpoint URL
// replacing the profile's default host.
func NewSessionServiceAt(profile domain.Profile, endpointURL string, transport ports.Transport) *SessionService {
	tokens := profile.BeginSession()
	return &SessionService{
		profile:     profile,
		endpointURL: endpointURL,
		tokens:      &tokens,
		transport:   transport,
		clock:       ports.SystemClock{},
	}
}

// WithClock replaces the clock used for sync time projection.
func (s *SessionService) WithClock(clock ports.Clock) *SessionService {
	s.clock = clock
	return s
}

// Profile returns the credential profile this session was started from.
func (s *SessionService) Profile() domain.Profile {
	return s.profile
}

// Tokens returns a point-in-time copy of the session token state.
func (s *SessionService) Tokens() domain.TokensSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.SnapshotAt(s.clock.Now())
}

// HasUser reports whether a user token pair is currently held.
func (s *SessionService) HasUser() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.HasUser()
}

// Call performs one API call: builds the envelope from the current token
// state, sends it, and decodes the response into out. If the service
// reports the auth token invalid, both token pairs are cleared before the
// error is returned, so the next call must re-authenticate instead of
// retrying with known-bad tokens.
func (s *SessionService) Call(ctx context.Context, method string, params any, options map[string]any, encrypted bool, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callLocked(ctx, method, params, options, encrypted, out)
}

func (s *SessionService) callLocked(ctx context.Context, method string, params any, options map[string]any, encrypted bool, out any) error {
	envelope, err := BuildEnvelope(s.endpointURL, method, params, options, encrypted, s.tokens.SnapshotAt(s.clock.Now()))
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	raw, err := s.transport.Send(ctx, envelope)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	if err := interpretResponse(raw, out); err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Kind == domain.KindInvalidAuthToken {
			s.tokens.ClearPartner()
			s.tokens.ClearUser()
		}
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// PartnerLogin performs the first half of the handshake. The request body
// goes out in the clear; the returned sync time is decrypted and captured
// along with the partner token pair.
func (s *SessionService) PartnerLogin(ctx context.Context) (PartnerLoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request := PartnerLoginRequest{
		Username:    s.profile.Username,
		Password:    s.profile.Password,
		DeviceModel: s.profile.DeviceModel,
		Version:     s.profile.Version,
	}

	var response PartnerLoginResponse
	if err := s.callLocked(ctx, "auth.partnerLogin", request, nil, false, &response); err != nil {
		return PartnerLoginResponse{}, err
	}

	s.tokens.UpdatePartner(response.PartnerID, response.PartnerAuthToken, response.SyncTime)
	return response, nil
}

// UserLogin performs the second half of the handshake using the listener's
// own credentials. The body is encrypted; a partner token pair must
// already be held.
func (s *SessionService) UserLogin(ctx context.Context, username, password string) (UserLoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tokens.HasPartner() {
		return UserLoginResponse{}, errors.New("auth.userLogin: partner login required first")
	}

	request := UserLoginRequest{
		LoginType: "user",
		Username:  username,
		Password:  password,
	}

	var response UserLoginResponse
	if err := s.callLocked(ctx, "auth.userLogin", request, nil, true, &response); err != nil {
		return UserLoginResponse{}, err
	}

	s.tokens.UpdateUser(response.UserID, response.UserAuthToken)
	return response, nil
}

// Login runs the full two-phase handshake in order.
func (s *SessionService) Login(ctx context.Context, username, password string) (UserLoginResponse, error) {
	if _, err := s.PartnerLogin(ctx); err != nil {
		return UserLoginResponse{}, err
	}
	return s.UserLogin(ctx, username, password)
}
