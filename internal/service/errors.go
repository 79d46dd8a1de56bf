package service

import "errors"

var (
	ErrInvalidSlugMode = errors.New("invalid slug mode")
	ErrUnknownAction   = errors.New("unknown action")
)
