package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// The session lives under two fixed keys. They are always written and
// cleared together so a reader can never observe a token without its
// account record or vice versa.
const (
	tokenKey   = "lanhcare:admin:token"
	accountKey = "lanhcare:admin:account"
)

// SessionVault persists the administrator session in Redis so it survives
// gateway restarts.
type SessionVault struct {
	client *redis.Client
}

// NewSessionVault creates a SessionVault wrapping the given Redis client.
func NewSessionVault(client *redis.Client) *SessionVault {
	return &SessionVault{client: client}
}

// Store writes both keys atomically. No TTL: the token carries its own
// expiry and CheckAuth drops stale sessions.
func (v *SessionVault) Store(ctx context.Context, token string, account []byte) error {
	_, err := v.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, tokenKey, token, 0)
		pipe.Set(ctx, accountKey, account, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("vault store: %w", err)
	}
	return nil
}

// Load reads both keys. A missing pair yields ("", nil, nil); a half-written
// pair is treated as absent.
func (v *SessionVault) Load(ctx context.Context) (string, []byte, error) {
	vals, err := v.client.MGet(ctx, tokenKey, accountKey).Result()
	if err != nil {
		return "", nil, fmt.Errorf("vault load: %w", err)
	}

	token, okToken := vals[0].(string)
	account, okAccount := vals[1].(string)
	if !okToken || !okAccount || token == "" || account == "" {
		return "", nil, nil
	}
	return token, []byte(account), nil
}

// Clear deletes both keys. Deleting absent keys is a no-op, which keeps
// logout idempotent.
func (v *SessionVault) Clear(ctx context.Context) error {
	if err := v.client.Del(ctx, tokenKey, accountKey).Err(); err != nil {
		return fmt.Errorf("vault clear: %w", err)
	}
	return nil
}
