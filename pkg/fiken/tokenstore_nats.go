package fiken

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
)

// ErrNATSConfigRequired is returned when a NATS token store has no connection
// and no URL to dial.
var ErrNATSConfigRequired = errors.New("NATS URL or connection required for NATS token store")

// StoredToken is an OAuth2 token as kept by a token store.
type StoredToken struct {
	AccessToken  string    `json:"access_token"  yaml:"access_token"`
	RefreshToken string    `json:"refresh_token" yaml:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"    yaml:"expires_at"`
}

// NATSKVConfig configures a JetStream key/value token store.
type NATSKVConfig struct {
	// URL of the NATS server. Ignored when Conn is set.
	URL string
	// Conn is an existing connection. The store does not close it.
	Conn *nats.Conn
	// Bucket defaults to "fiken_tokens" and is created when missing.
	Bucket string
	// Key identifies the token within the bucket, typically the OAuth2
	// client ID. Defaults to "default".
	Key string
	// TTL of stored entries. Zero keeps them forever.
	TTL time.Duration
}

// NATSTokenStore shares rotated OAuth2 tokens between processes through a
// NATS JetStream key/value bucket. Fiken refresh tokens are single use, so
// processes sharing one authorization must also share the latest token.
type NATSTokenStore struct {
	conn     *nats.Conn
	ownsConn bool
	kv       nats.KeyValue
	key      string
}

// NewNATSTokenStore connects to NATS when needed and binds to the bucket,
// creating it if it does not exist.
func NewNATSTokenStore(config *NATSKVConfig) (*NATSTokenStore, error) {
	if config == nil || (config.Conn == nil && config.URL == "") {
		return nil, ErrNATSConfigRequired
	}

	store := &NATSTokenStore{
		conn: config.Conn,
		key:  config.Key,
	}

	if store.key == "" {
		store.key = "default"
	}

	if store.conn == nil {
		conn, err := nats.Connect(config.URL, nats.Name("fiken-client token store"))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS at %s: %w", config.URL, err)
		}

		store.conn = conn
		store.ownsConn = true
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = constants.DefaultTokenBucket
	}

	kv, err := bindBucket(store.conn, bucket, config.TTL)
	if err != nil {
		store.Close()

		return nil, err
	}

	store.kv = kv

	return store, nil
}

func bindBucket(conn *nats.Conn, bucket string, ttl time.Duration) (nats.KeyValue, error) {
	js, err := conn.JetStream()
	if err != nil {
		return nil, fmt.Errorf("failed to open JetStream context: %w", err)
	}

	kv, err := js.KeyValue(bucket)
	if err == nil {
		return kv, nil
	}

	if !errors.Is(err, nats.ErrBucketNotFound) {
		return nil, fmt.Errorf("failed to bind key/value bucket %s: %w", bucket, err)
	}

	kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
		Bucket:      bucket,
		Description: "Fiken OAuth2 tokens",
		TTL:         ttl,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create key/value bucket %s: %w", bucket, err)
	}

	return kv, nil
}

// SaveToken implements TokenPersister.
func (s *NATSTokenStore) SaveToken(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time) error {
	err := ctx.Err()
	if err != nil {
		return err //nolint:wrapcheck // context errors are returned as is
	}

	data, err := json.Marshal(StoredToken{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	_, err = s.kv.Put(s.key, data)
	if err != nil {
		return fmt.Errorf("failed to store token %s: %w", s.key, err)
	}

	return nil
}

// LoadToken returns the latest stored token, or ErrTokenNotFound.
func (s *NATSTokenStore) LoadToken(ctx context.Context) (*StoredToken, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err //nolint:wrapcheck // context errors are returned as is
	}

	entry, err := s.kv.Get(s.key)
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, s.key)
		}

		return nil, fmt.Errorf("failed to load token %s: %w", s.key, err)
	}

	var token StoredToken

	err = json.Unmarshal(entry.Value(), &token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token %s: %w", s.key, err)
	}

	return &token, nil
}

// Close drains the connection if the store opened it.
func (s *NATSTokenStore) Close() {
	if s.ownsConn && s.conn != nil {
		_ = s.conn.Drain()
	}
}
