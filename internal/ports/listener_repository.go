package ports

import (
	"context"

	"github.com/tunerlab/pandora-cli/internal/domain"
)

// ListenerRepository persists the single stored listener account used by
// the CLI. Session tokens are never persisted; only the account reference.
type ListenerRepository interface {
	Get(ctx context.Context) (domain.Listener, error)
	Save(ctx context.Context, listener domain.Listener) error
	Delete(ctx context.Context) error
}
