package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "auth:token:"

// Store keeps one redis entry per live bearer token with an idle TTL.
// Every authenticated request touches the entry and pushes the TTL forward,
// so a token idle for longer than the budget dies server-side regardless of
// what the browser tab does. Logout deletes the entry outright.
type Store struct {
	client *redis.Client
	idle   time.Duration
}

// NewStore creates a session store with the given idle budget
func NewStore(client *redis.Client, idle time.Duration) *Store {
	return &Store{client: client, idle: idle}
}

// Create registers a session for the token, owned by the given officer
func (s *Store) Create(ctx context.Context, token string, officerID int64) error {
	err := s.client.Set(ctx, keyPrefix+token, officerID, s.idle).Err()
	if err != nil {
		return fmt.Errorf("%w: Create: %v", ErrStore, err)
	}
	return nil
}

// Touch extends the session's idle TTL and returns the owning officer id.
// Returns ErrSessionNotFound for tokens that expired or were logged out.
func (s *Store) Touch(ctx context.Context, token string) (int64, error) {
	officerID, err := s.client.GetEx(ctx, keyPrefix+token, s.idle).Int64()
	if err == redis.Nil {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Touch: %v", ErrStore, err)
	}
	return officerID, nil
}

// Delete removes the session, invalidating the token immediately
func (s *Store) Delete(ctx context.Context, token string) error {
	deleted, err := s.client.Del(ctx, keyPrefix+token).Result()
	if err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrStore, err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}
