package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/usuarios-api/internal/users"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.Storage != StorageMemory {
		t.Errorf("expected default storage %q, got %q", StorageMemory, cfg.Storage)
	}
	if cfg.IDPolicy != users.IDPolicyLength {
		t.Errorf("expected default id_policy %q, got %q", users.IDPolicyLength, cfg.IDPolicy)
	}
	if !cfg.Seed {
		t.Error("expected seed enabled by default")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.usuarios.yml")

	original := DefaultConfig()
	original.Port = 8081
	original.Storage = StorageSQLite
	original.IDPolicy = users.IDPolicySequence
	original.Seed = false
	original.AllowAllOrigins = true
	original.RequestTimeoutSeconds = 5

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("round-trip mismatch: got %+v, want %+v", *loaded, *original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("port: 4000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 4000 {
		t.Errorf("expected port 4000, got %d", cfg.Port)
	}
	if cfg.Storage != StorageMemory || !cfg.Seed {
		t.Errorf("expected remaining defaults, got %+v", *cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("USUARIOS_PORT", "9090")
	t.Setenv("USUARIOS_ID_POLICY", "sequence")
	t.Setenv("USUARIOS_SEED", "false")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9090 {
		t.Errorf("port override failed: got %d", loaded.Port)
	}
	if loaded.IDPolicy != users.IDPolicySequence {
		t.Errorf("id_policy override failed: got %q", loaded.IDPolicy)
	}
	if loaded.Seed {
		t.Error("seed override failed: expected false")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("port: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"unknown storage", func(c *Config) { c.Storage = "postgres" }},
		{"empty storage", func(c *Config) { c.Storage = "" }},
		{"unknown id policy", func(c *Config) { c.IDPolicy = "max" }},
		{"negative timeout", func(c *Config) { c.RequestTimeoutSeconds = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"3000", false},
		{"1", false},
		{"65535", false},
		{"0", true},
		{"65536", true},
		{"abc", true},
		{"", true},
	}

	for _, tt := range tests {
		err := validatePort(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePort(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateAcceptsEveryUserIDPolicy(t *testing.T) {
	for _, policy := range []users.IDPolicy{users.IDPolicyLength, users.IDPolicySequence} {
		cfg := DefaultConfig()
		cfg.IDPolicy = policy
		if err := cfg.Validate(); err != nil {
			t.Errorf("id_policy %q should be valid, got: %v", policy, err)
		}
	}
}
