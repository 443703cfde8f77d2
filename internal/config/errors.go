package config

import "errors"

var (
	ErrFailedToValidateConfig = errors.New("failed to validate config")
	ErrInvalidHost            = errors.New("invalid host")
	ErrInvalidPort            = errors.New("invalid port")
	ErrEmptyGreeting          = errors.New("greeting must not be empty")
	ErrInvalidLogLevel        = errors.New("unknown log level")
	ErrInvalidLogFormat       = errors.New("unknown log format")
)
