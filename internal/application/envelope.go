package application

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tunerlab/pandora-cli/internal/crypt"
	"github.com/tunerlab/pandora-cli/internal/domain"
)

// Reserved body fields injected from the session state. Callers must not
// supply these in their parameter payloads; if one is present anyway the
// injection skips it rather than overwriting.
const (
	bodyFieldPartnerAuthToken = "partnerAuthToken"
	bodyFieldUserAuthToken    = "userAuthToken"
	bodyFieldSyncTime         = "syncTime"
)

// BuildEnvelope assembles one API call into a transport-ready envelope:
// session tokens are merged into the query arguments and the JSON body,
// and the body is optionally run through the block cipher codec.
//
// params must serialize to a JSON object (or be nil for an empty body).
// options are free-form per-endpoint extras merged additively into the
// body; an option whose key already exists in the body is skipped. The
// tokens snapshot is a value copy, so the live session state is never
// touched here.
func BuildEnvelope(endpointURL, method string, params any, options map[string]any, encrypted bool, tokens domain.TokensSnapshot) (domain.RequestEnvelope, error) {
	body, err := bodyObject(params)
	if err != nil {
		return domain.RequestEnvelope{}, err
	}

	for key, value := range options {
		if _, exists := body[key]; exists {
			continue
		}
		body[key] = value
	}

	if tokens.PartnerAuthToken != "" {
		if _, exists := body[bodyFieldPartnerAuthToken]; !exists {
			body[bodyFieldPartnerAuthToken] = tokens.PartnerAuthToken
		}
	}
	if tokens.UserAuthToken != "" {
		if _, exists := body[bodyFieldUserAuthToken]; !exists {
			body[bodyFieldUserAuthToken] = tokens.UserAuthToken
		}
	}
	if tokens.HasSyncTime {
		if _, exists := body[bodyFieldSyncTime]; !exists {
			body[bodyFieldSyncTime] = tokens.SyncTime
		}
	}

	serialized, err := json.Marshal(body)
	if err != nil {
		return domain.RequestEnvelope{}, fmt.Errorf("encode request body: %w", err)
	}

	bodyString := string(serialized)
	if encrypted {
		bodyString = crypt.Encrypt(tokens.EncryptKey, bodyString)
	}

	args := url.Values{}
	args.Set("method", method)
	if authToken, ok := tokens.AuthToken(); ok {
		args.Set("auth_token", authToken)
	}
	if tokens.PartnerID != "" {
		args.Set("partner_id", tokens.PartnerID)
	}
	if tokens.UserID != "" {
		args.Set("user_id", tokens.UserID)
	}

	return domain.RequestEnvelope{
		// Encode() emits keys in sorted order, which keeps the argument
		// set deterministic across calls.
		URL:    endpointURL + "?" + args.Encode(),
		Method: method,
		Body:   bodyString,
	}, nil
}

// bodyObject serializes params and reads it back as a generic object so
// that session fields can be merged in. It rejects payloads that are not
// JSON objects, since the wire format requires an object body.
func bodyObject(params any) (map[string]any, error) {
	if params == nil {
		return map[string]any{}, nil
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode request params: %w", err)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("request params must encode to a JSON object: %w", err)
	}

	return body, nil
}
