package domain

import "errors"

var (
	ErrUnknownDevice          = errors.New("unknown device kind")
	ErrInvalidContent         = errors.New("invalid response content")
	ErrListenerNotFound       = errors.New("listener account not found")
	ErrSecretNotFound         = errors.New("secret not found")
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")
	ErrUnsupportedGender      = errors.New("unsupported gender")
)
