package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/logger"
	"github.com/julianstephens/agenda/internal/migration"
	"github.com/julianstephens/agenda/internal/storage"
	"github.com/julianstephens/agenda/migrations"
)

type Store struct {
	connStr string
	db      *sql.DB
}

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

// IsConnString reports whether config looks like a PostgreSQL URL.
func IsConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

func New(connStr string) *Store {
	s := &Store{
		connStr: connStr,
	}
	s.ensureSearchPath()
	return s
}

func (s *Store) ensureSearchPath() {
	if IsConnString(s.connStr) {
		u, err := url.Parse(s.connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
	} else if !hasParam(s.connStr, "search_path") {
		s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
	}
}

// hasParam reports whether a DSN-style (space separated key=value) or
// URL-style connection string carries the given parameter, case-insensitively.
func hasParam(connStr, name string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, name) {
				return true
			}
		}
	}
	for _, part := range strings.Fields(connStr) {
		key, _, ok := strings.Cut(part, "=")
		if ok && strings.EqualFold(key, name) {
			return true
		}
	}
	return false
}

// ValidateConnString checks that connStr is a valid PostgreSQL connection
// string (URI or DSN) that does not embed a password.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if IsConnString(connStr) {
		parsedURL, err := url.Parse(connStr)
		if err != nil {
			return fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := parsedURL.User.Password(); isSet {
			return ErrEmbeddedCredentials
		}
		if parsedURL.Host == "" && parsedURL.User == nil && (parsedURL.Path == "" || parsedURL.Path == "/") {
			return fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
		return nil
	}

	for _, pair := range strings.Fields(connStr) {
		key, _, ok := strings.Cut(pair, "=")
		if ok && strings.EqualFold(strings.TrimSpace(key), "password") {
			return ErrEmbeddedCredentials
		}
	}
	return nil
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One user, one process; a small pool is plenty.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasParam(s.connStr, "sslmode") {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	s.db = db
	return nil
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec("CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(constants.AppName)); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	if _, err := runner.ApplyMigrations(func(msg string) {
		logger.Info(msg, "store", "postgres")
	}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if err := s.open(); err != nil {
		return err
	}
	runner, err := s.runner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.Postgres), nil
}

func (s *Store) Get(key string) (string, error) {
	if s.db == nil {
		return "", storage.ErrNotLoaded
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	if s.db == nil {
		return storage.ErrNotLoaded
	}

	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	// Never expose the connection string itself.
	return "postgresql"
}
