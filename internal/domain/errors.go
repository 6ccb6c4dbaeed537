package domain

import "fmt"

// ConfigError reports an invalid or incomplete run configuration.
// It is always raised before any resource file is read.
// Err, when set, is the underlying cause.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return "configuration: " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LoadError reports a resource file that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ValidationError reports a failed semantic check. File is empty when the
// error aggregates several comparison files.
type ValidationError struct {
	File   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.File == "" {
		return e.Reason
	}
	return fmt.Sprintf("resource bundle %s %s", e.File, e.Reason)
}
