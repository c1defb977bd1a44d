package config

import "errors"

var (
	ErrBadConfig             = errors.New("config: Bad config")
	ErrMissingCapacityConfig = MissingRequiredConfigError("capacity")
	ErrInvalidCapacityConfig = InvalidConfigError("capacity must be a positive integer")
)

type MissingRequiredConfigError string

func (e MissingRequiredConfigError) Error() string {
	return "config: Missing required config for " + string(e)
}

type InvalidConfigError string

func (e InvalidConfigError) Error() string {
	return "config: Invalid config, " + string(e)
}

// FieldError attaches the config field a nested error came from.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return "config: Invalid value for " + e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
