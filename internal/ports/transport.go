package ports

import (
	"context"

	"github.com/tunerlab/pandora-cli/internal/domain"
)

// Transport delivers one request envelope to the service and returns the
// raw response body. Connection reuse, TLS, and timeouts are the
// implementation's concern; the core never retries.
type Transport interface {
	Send(ctx context.Context, envelope domain.RequestEnvelope) ([]byte, error)
}
