package models

import (
	"errors"
)

var (
	ErrSourceUnavailable = errors.New("models: review source unavailable")
	ErrMalformedPayload  = errors.New("models: review payload is not a valid review list")
)
