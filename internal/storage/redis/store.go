package redis

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/storage"
)

// DefaultTimeout bounds every round trip to the server.
const DefaultTimeout = 3 * time.Second

// IsConnString reports whether config looks like a Redis URL.
func IsConnString(config string) bool {
	return strings.HasPrefix(config, "redis://") || strings.HasPrefix(config, "rediss://")
}

// Store keeps values as plain Redis strings under "<namespace>:<key>".
type Store struct {
	url       string
	client    *redis.Client
	namespace string
	timeout   time.Duration
}

func New(connURL string) *Store {
	return &Store{
		url:       connURL,
		namespace: constants.AppName,
		timeout:   DefaultTimeout,
	}
}

// NewWithClient wraps an existing client; Init/Load only ping it.
func NewWithClient(client *redis.Client) *Store {
	return &Store{
		client:    client,
		namespace: constants.AppName,
		timeout:   DefaultTimeout,
	}
}

func (s *Store) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func (s *Store) connect() error {
	if s.client == nil {
		opts, err := redis.ParseURL(s.url)
		if err != nil {
			return fmt.Errorf("invalid redis url: %w", err)
		}
		s.client = redis.NewClient(opts)
	}

	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}

// Init and Load are equivalent: Redis needs no schema.
func (s *Store) Init() error { return s.connect() }
func (s *Store) Load() error { return s.connect() }

func (s *Store) Close() error {
	if s.client != nil {
		err := s.client.Close()
		s.client = nil
		return err
	}
	return nil
}

func (s *Store) key(key string) string {
	return s.namespace + ":" + key
}

func (s *Store) Get(key string) (string, error) {
	if s.client == nil {
		return "", storage.ErrNotLoaded
	}
	ctx, cancel := s.ctx()
	defer cancel()

	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	if s.client == nil {
		return storage.ErrNotLoaded
	}
	ctx, cancel := s.ctx()
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// GetConfigPath returns the server address with any credentials stripped.
func (s *Store) GetConfigPath() string {
	if s.url == "" {
		return "redis"
	}
	u, err := url.Parse(s.url)
	if err != nil {
		return "redis"
	}
	return u.Scheme + "://" + u.Host
}
