package conf

// DefaultConfig maps flattened config keys to their default values.
type DefaultConfig map[string]any
