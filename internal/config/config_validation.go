package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token secrets are the load-bearing checks: both must be present and
// they must differ, otherwise the access/refresh separation is meaningless.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.AccessSecretKey == "" || cfg.Auth.RefreshSecretKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.AccessSecretKey == cfg.Auth.RefreshSecretKey {
		return ErrSharedTokenSecrets
	}

	if cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.ExtendedAccessTokenTTL <= 0 || cfg.Auth.RefreshTokenTTL <= 0 {
		return ErrInvalidTokenTTL
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
