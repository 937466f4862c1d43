package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	tomlrepo "github.com/tunerlab/pandora-cli/internal/adapters/repo/toml"
	chainstore "github.com/tunerlab/pandora-cli/internal/adapters/secrets/chain"
	"github.com/tunerlab/pandora-cli/internal/adapters/transport"
	"github.com/tunerlab/pandora-cli/internal/application"
	"github.com/tunerlab/pandora-cli/internal/domain"
	"github.com/tunerlab/pandora-cli/internal/ports"
)

// listenerSecretKey is where the stored listener's password lives in the
// secret store.
const listenerSecretKey = "pandora/listener/password"

type app struct {
	listeners   ports.ListenerRepository
	secretStore ports.SecretStore
	transport   ports.Transport
	// endpointURL overrides the profile's endpoint when non-empty.
	endpointURL string
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire listener repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(
		filepath.Join(homeDir, ".pandora", "password-store"),
		filepath.Join(homeDir, ".pandora", "secrets"),
	)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		listeners:   repo,
		secretStore: secretStore,
		transport:   transport.New(http.DefaultClient),
		endpointURL: os.Getenv("PANDORA_ENDPOINT"),
	}, nil
}

// sessionFor starts an unauthenticated session for the device persona.
func (a *app) sessionFor(device domain.DeviceKind) (*application.SessionService, error) {
	profile, err := domain.ProfileFor(device)
	if err != nil {
		return nil, err
	}

	endpointURL := a.endpointURL
	if endpointURL == "" {
		endpointURL = profile.EndpointURL()
	}

	return application.NewSessionServiceAt(profile, endpointURL, a.transport), nil
}

// authenticatedSession resolves the stored listener, loads its password
// from the secret store, and runs the full handshake.
func (a *app) authenticatedSession(ctx context.Context) (*application.SessionService, domain.Listener, error) {
	listener, err := a.listeners.Get(ctx)
	if err != nil {
		return nil, domain.Listener{}, fmt.Errorf("load listener account (run \"pandora account set\" first): %w", err)
	}

	secretRef := listener.SecretRef
	if secretRef == "" {
		secretRef = listenerSecretKey
	}

	password, err := a.secretStore.Get(ctx, secretRef)
	if err != nil {
		return nil, domain.Listener{}, fmt.Errorf("load listener password: %w", err)
	}

	session, err := a.sessionFor(listener.Device)
	if err != nil {
		return nil, domain.Listener{}, err
	}

	if _, err := session.Login(ctx, listener.Username, password); err != nil {
		return nil, domain.Listener{}, err
	}

	return session, listener, nil
}
