package application

import (
	"encoding/json"
	"fmt"

	"github.com/tunerlab/pandora-cli/internal/domain"
)

// apiEnvelope is the outer response shape shared by every endpoint. The
// stat field carries "ok" or "fail"; result is only present on success and
// code/message only on failure.
type apiEnvelope struct {
	Stat    string          `json:"stat"`
	Result  json.RawMessage `json:"result"`
	Message string          `json:"message"`
	Code    *int            `json:"code"`
}

// interpretResponse decodes one response envelope into out. A fail
// envelope becomes an *domain.APIError built from its code and message.
// An ok envelope with no result field decodes out from an empty object,
// which matches endpoints that return nothing on success.
func interpretResponse(raw []byte, out any) error {
	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}

	switch envelope.Stat {
	case "ok":
		result := envelope.Result
		if len(result) == 0 {
			result = json.RawMessage("{}")
		}
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(result, out); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
		}
		return nil
	case "fail":
		return domain.NewAPIError(envelope.Code, envelope.Message)
	default:
		return fmt.Errorf("unexpected response stat %q", envelope.Stat)
	}
}
