package domain

import "errors"

var (
	ErrUnauthenticated     = errors.New("no owner identity")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrNotFound            = errors.New("not found")
	ErrCurrencyMismatch    = errors.New("mixed currencies in cart")
	ErrUpstreamUnavailable = errors.New("assistant is not configured")
	ErrUpstreamError       = errors.New("assistant upstream failed")
)
