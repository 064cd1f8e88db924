package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/usuarios-api/internal/users"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the usuarios API.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port to listen on",
		Default:  strconv.Itoa(defaults.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 2. Storage backend.
	storagePrompt := promptui.Select{
		Label: "Select storage backend",
		Items: []string{
			"memory — slice held by the process",
			"sqlite — in-memory SQLite table",
		},
	}
	storageIdx, _, err := storagePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("storage selection: %w", err)
	}
	storage := []StorageType{StorageMemory, StorageSQLite}[storageIdx]

	// 3. Id policy.
	policyPrompt := promptui.Select{
		Label: "Select id policy",
		Items: []string{
			"length   — collection size + 1 (may repeat ids after a delete)",
			"sequence — monotonic counter, ids never reused",
		},
	}
	policyIdx, _, err := policyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("id policy selection: %w", err)
	}
	policy := []users.IDPolicy{users.IDPolicyLength, users.IDPolicySequence}[policyIdx]

	// 4. Seed users.
	seedPrompt := promptui.Prompt{
		Label:     "Start with the sample users Juan and Ana",
		IsConfirm: true,
		Default:   "y",
	}
	seed := true
	if _, err := seedPrompt.Run(); err != nil {
		if !errors.Is(err, promptui.ErrAbort) {
			return nil, fmt.Errorf("seed: %w", err)
		}
		seed = false
	}

	cfg := &Config{
		Port:                  port,
		Storage:               storage,
		IDPolicy:              policy,
		Seed:                  seed,
		AllowAllOrigins:       defaults.AllowAllOrigins,
		RequestTimeoutSeconds: defaults.RequestTimeoutSeconds,
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(input string) error {
	n, err := strconv.Atoi(input)
	if err != nil {
		return errors.New("port must be a number")
	}
	if n < 1 || n > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
