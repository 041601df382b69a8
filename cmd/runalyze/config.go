package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

var (
	errConfigMissing = errors.New("configuration file not found")
	errConfigInvalid = errors.New("configuration file is not valid JSON")
)

// Config is the persisted CLI configuration. The token is the only
// recognized key; the whole file is rewritten on save.
type Config struct {
	Token string `json:"token"`
}

// defaultConfigPath returns the config file location following XDG spec
func defaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configHome, "runalyze", "config.json"), nil
}

// loadToken reads the config file and returns the stored token. The token
// may be empty if the file does not carry one; callers use it as-is.
func loadToken(configPath string) (string, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w at %s; create it with your API token or pass --token", errConfigMissing, configPath)
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return "", fmt.Errorf("%w: %s", errConfigInvalid, configPath)
	}

	return config.Token, nil
}

// saveToken writes the token to the config file, creating parent
// directories as needed. Any existing content is replaced.
func saveToken(configPath, token string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.Marshal(Config{Token: token})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// resolveToken resolves the credential for this run: an explicit flag value
// wins, then the RUNALYZE_TOKEN environment variable (with .env support),
// then the config file. A flag-supplied token is persisted only when no
// config file exists yet.
func resolveToken(configPath, flagToken string, silent bool) (string, error) {
	if flagToken != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			if err := saveToken(configPath, flagToken); err != nil {
				return "", err
			}
			if !silent {
				fmt.Printf("Token saved to %s.\n", configPath)
			}
		}
		return flagToken, nil
	}

	_ = godotenv.Load()
	if token := os.Getenv("RUNALYZE_TOKEN"); token != "" {
		return token, nil
	}

	token, err := loadToken(configPath)
	if err != nil {
		return "", err
	}
	if !silent {
		fmt.Printf("Token loaded from %s.\n", configPath)
	}
	return token, nil
}
