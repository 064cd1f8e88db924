package config

import "github.com/ziadkadry99/usuarios-api/internal/users"

// StorageType selects the backend behind the user collection.
type StorageType string

const (
	StorageMemory StorageType = "memory"
	StorageSQLite StorageType = "sqlite"
)

// Config is the top-level configuration, corresponding to .usuarios.yml.
type Config struct {
	Port                  int            `yaml:"port" koanf:"port"`
	Storage               StorageType    `yaml:"storage" koanf:"storage"`
	IDPolicy              users.IDPolicy `yaml:"id_policy" koanf:"id_policy"`
	Seed                  bool           `yaml:"seed" koanf:"seed"`
	AllowAllOrigins       bool           `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeoutSeconds int            `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
}
