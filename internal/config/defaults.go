package config

import "github.com/ziadkadry99/usuarios-api/internal/users"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".usuarios.yml"

// DefaultConfig returns a Config matching the tutorial server: port 3000,
// in-memory storage, size-based ids and the two seed users.
func DefaultConfig() *Config {
	return &Config{
		Port:                  3000,
		Storage:               StorageMemory,
		IDPolicy:              users.IDPolicyLength,
		Seed:                  true,
		AllowAllOrigins:       false,
		RequestTimeoutSeconds: 60,
	}
}
