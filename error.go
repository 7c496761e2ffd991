package propcat

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for any message.format other than
// "string" or "message".
var ErrUnsupportedFormat = errors.New("unsupported message format")

// ConfigError reports an invalid configuration option. It is the only error
// kind that reaches callers; resolution never fails.
type ConfigError struct {
	Option string
	Value  string
	err    error
}

func (ce *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s=%q: %v", ce.Option, ce.Value, ce.err)
}

func (ce *ConfigError) Unwrap() error {
	return ce.err
}

func newConfigError(option string, value string, err error) error {
	return &ConfigError{Option: option, Value: value, err: err}
}

// LoadError describes a failure to read or parse an existing catalog file.
// It is handed to the Logger and the Observer, never returned from lookups.
type LoadError struct {
	Path string
	err  error
}

func (le *LoadError) Error() string {
	return fmt.Sprintf("failed to load message file %s, cause: %v", le.Path, le.err)
}

func (le *LoadError) Unwrap() error {
	return le.err
}

func newLoadError(path string, err error) *LoadError {
	return &LoadError{Path: path, err: err}
}
