package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates a missing access or refresh token
	// signing secret.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration: both token secrets are required")
	// ErrSharedTokenSecrets indicates that the access and refresh secrets
	// are identical, which would make the two token kinds interchangeable.
	ErrSharedTokenSecrets = errors.New("invalid auth configuration: access and refresh secrets must differ")
	// ErrInvalidTokenTTL indicates a zero or negative token lifetime.
	ErrInvalidTokenTTL = errors.New("invalid auth configuration: token lifetimes must be positive")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
