package config

import "fmt"

// Error reports an invalid configuration value, carrying the
// offending key and value so the CLI can point at what to fix. It is
// returned from NewResolver before any formatting runs.
type Error struct {
	Key   string
	Value string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid config value for %q: %q", e.Key, e.Value)
}
