package cli

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/keyring"
	"github.com/julianstephens/agenda/internal/storage/postgres"
	"github.com/julianstephens/agenda/internal/storage/redis"
)

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL or Redis connection string."`
}

func (cmd *KeyringSetCmd) Run(ctx *Context) error {
	connStr := strings.TrimSpace(cmd.ConnectionString)

	if !redis.IsConnString(connStr) {
		if !postgres.IsConnString(connStr) && !strings.Contains(connStr, "host=") {
			return errors.New("connection string must be a PostgreSQL or Redis connection string")
		}
		// The keyring is encrypted, so a password is fine here.
		if err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
	}

	if err := keyring.Set(connStr); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "✓ Connection string stored in OS keyring: %s\n", maskPassword(connStr))
	fmt.Fprintf(ctx.Out, "  Use it with --config=%s\n", constants.KeyringConfig)
	return nil
}

type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.Delete(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}
	fmt.Fprintln(ctx.Out, "✓ Connection string deleted from OS keyring")
	return nil
}

type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *Context) error {
	if !keyring.Available() {
		fmt.Fprintln(ctx.Out, "OS keyring is not available on this system")
		return keyring.ErrUnavailable
	}
	fmt.Fprintln(ctx.Out, "✓ OS keyring is available")

	switch connStr, err := keyring.Get(); {
	case err == nil:
		fmt.Fprintf(ctx.Out, "✓ Connection string stored: %s\n", maskPassword(connStr))
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Fprintln(ctx.Out, "No connection string stored")
	default:
		return err
	}
	return nil
}

// maskPassword hides the password of a URL or key=value connection string.
func maskPassword(connStr string) string {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "****")
			return strings.Replace(u.String(), "%2A%2A%2A%2A", "****", 1)
		}
		return connStr
	}

	fields := strings.Fields(connStr)
	for i, f := range fields {
		if key, _, ok := strings.Cut(f, "="); ok && strings.EqualFold(key, "password") {
			fields[i] = key + "=****"
		}
	}
	return strings.Join(fields, " ")
}
