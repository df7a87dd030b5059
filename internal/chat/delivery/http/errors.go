package http

import "errors"

var (
	errInvalidBody  = errors.New("invalid request body")
	errEmptyMessage = errors.New("message is required")
)
