package configuration

import "errors"

var (
	// ErrInvalidValue occurs when a configuration key holds a value that
	// cannot be parsed for that key.
	ErrInvalidValue = errors.New("invalid configuration value")

	// ErrNoConfigFile occurs when configuration is read without naming a
	// file.
	ErrNoConfigFile = errors.New("no configuration file given")
)
