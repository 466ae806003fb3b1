package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/keyring"
	"github.com/julianstephens/agenda/internal/logger"
	"github.com/julianstephens/agenda/internal/storage"
	"github.com/julianstephens/agenda/internal/storage/postgres"
	"github.com/julianstephens/agenda/internal/storage/redis"
	"github.com/julianstephens/agenda/internal/storage/sqlite"
)

// NewProvider picks the storage backend for a --config value.
func NewProvider(config string) (storage.Provider, error) {
	config = strings.TrimSpace(config)

	if config == constants.KeyringConfig {
		connStr, source, err := keyring.Resolve()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, fmt.Errorf("no connection string found; run 'agenda keyring set' or set %s", constants.ConnectionEnvVar)
			}
			return nil, err
		}
		logger.Debug("Using stored connection string", "source", source)
		return remoteProvider(connStr)
	}

	switch {
	case postgres.IsConnString(config):
		if err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w; store it with 'agenda keyring set' and use --config=keyring", err)
			}
			return nil, err
		}
		return postgres.New(config), nil
	case redis.IsConnString(config):
		return redis.New(config), nil
	}

	path, err := expandPath(config)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return storage.NewJSONStore(path), nil
	}
	return sqlite.NewStore(path), nil
}

// remoteProvider accepts connection strings from trusted sources, so
// embedded passwords are allowed.
func remoteProvider(connStr string) (storage.Provider, error) {
	switch {
	case redis.IsConnString(connStr):
		return redis.New(connStr), nil
	case postgres.IsConnString(connStr), strings.Contains(connStr, "host="):
		return postgres.New(connStr), nil
	}
	return nil, errors.New("stored connection string is neither a PostgreSQL nor a Redis connection string")
}

// StorePath returns the local file behind config, if it names one.
func StorePath(config string) (string, bool) {
	config = strings.TrimSpace(config)
	if config == constants.KeyringConfig || postgres.IsConnString(config) || redis.IsConnString(config) {
		return "", false
	}
	path, err := expandPath(config)
	if err != nil {
		return "", false
	}
	return path, true
}

// ConfigDir is where logs and exports live: next to a file store, or the
// default config directory for remote stores.
func ConfigDir(config string) string {
	if path, ok := StorePath(config); ok {
		return filepath.Dir(path)
	}
	path, err := expandPath(constants.DefaultConfigPath)
	if err != nil {
		return "."
	}
	return filepath.Dir(path)
}

func expandPath(path string) (string, error) {
	if path == "" {
		path = constants.DefaultConfigPath
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
