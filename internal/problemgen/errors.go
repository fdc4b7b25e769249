package problemgen

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEquation means no factor pair satisfies the ranges in play.
	ErrNoEquation = errors.New("no equation satisfies the configured ranges")

	// ErrNoUnknownRoles means the unknown-role set is empty.
	ErrNoUnknownRoles = errors.New("no unknown role is selectable")
)

// ConfigError reports a configuration under which no question can be
// generated.
type ConfigError struct {
	Kind   Kind   // generation path that failed
	Reason string // human-readable description
	Err    error  // underlying sentinel
}

func (e *ConfigError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Kind, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
