// Package keyring keeps the remote storage connection string in the OS
// keyring so it never has to appear in a config flag or shell history.
package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/agenda/internal/constants"
)

var (
	ErrNotFound    = errors.New("no connection string stored in keyring")
	ErrUnavailable = errors.New("OS keyring is not available")
)

// Source tells where a resolved connection string came from.
type Source string

const (
	SourceEnv     Source = "environment"
	SourceKeyring Source = "keyring"
)

// Get reads the stored connection string.
func Get() (string, error) {
	connStr, err := gokeyring.Get(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case errors.Is(err, gokeyring.ErrNotFound):
		return "", ErrNotFound
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return connStr, nil
}

// Set stores connStr, replacing any previous value.
func Set(connStr string) error {
	connStr = strings.TrimSpace(connStr)
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := gokeyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	return nil
}

func Delete() error {
	err := gokeyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case errors.Is(err, gokeyring.ErrNotFound):
		return ErrNotFound
	case err != nil:
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	return nil
}

// Resolve returns the connection string from the environment override, or
// from the keyring when the variable is unset.
func Resolve() (string, Source, error) {
	if v := strings.TrimSpace(os.Getenv(constants.ConnectionEnvVar)); v != "" {
		return v, SourceEnv, nil
	}
	connStr, err := Get()
	if err != nil {
		return "", "", err
	}
	return connStr, SourceKeyring, nil
}

// Available is a best-effort probe; a missing entry still counts as available.
func Available() bool {
	_, err := gokeyring.Get(constants.AppName, "availability-probe")
	return err == nil || errors.Is(err, gokeyring.ErrNotFound)
}
