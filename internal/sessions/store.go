package sessions

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/whymsicalc/ratings/internal/logger"
)

// Store keeps per-browser session state in Redis: the authenticated user id
// (if any) and the queue of one-shot flash notices. Session ids are opaque
// uuids minted here; the cookie layer is responsible for signing them.
type Store struct {
	client *redis.Client
	exp    time.Duration // session lifetime, refreshed on write
}

// New creates a Store backed by the given Redis client.
func New(client *redis.Client, expiration time.Duration) *Store {
	return &Store{
		client: client,
		exp:    expiration,
	}
}

// NewSessionID mints a fresh opaque session identifier.
func (s *Store) NewSessionID() string {
	return uuid.NewString()
}

func userKey(sessionID string) string {
	return fmt.Sprintf("session:%s:user", sessionID)
}

func flashKey(sessionID string) string {
	return fmt.Sprintf("session:%s:flash", sessionID)
}

// SetUser binds an authenticated user id to the session.
func (s *Store) SetUser(ctx context.Context, sessionID string, userID int64) error {
	key := userKey(sessionID)
	err := s.client.Set(ctx, key, strconv.FormatInt(userID, 10), s.exp).Err()

	logger.Log.Infow("session user set",
		"key", key,
		"user_id", userID,
		"error", err,
	)

	return err
}

// User returns the user id bound to the session, or 0 when the session is
// anonymous. An unknown session id is simply anonymous, never an error.
func (s *Store) User(ctx context.Context, sessionID string) (int64, error) {
	key := userKey(sessionID)

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		logger.Log.Errorw("session user get failed", "key", key, "error", err)
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Errorw("session user value malformed", "key", key, "value", val, "error", err)
		return 0, err
	}

	return userID, nil
}

// ClearUser removes the user binding from the session. Clearing a session
// with no bound user is a no-op.
func (s *Store) ClearUser(ctx context.Context, sessionID string) error {
	key := userKey(sessionID)
	err := s.client.Del(ctx, key).Err()

	logger.Log.Infow("session user cleared",
		"key", key,
		"error", err,
	)

	return err
}

// PushFlash queues a one-shot notice for the session.
func (s *Store) PushFlash(ctx context.Context, sessionID, message string) error {
	key := flashKey(sessionID)

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, message)
	pipe.Expire(ctx, key, s.exp)
	_, err := pipe.Exec(ctx)

	logger.Log.Infow("flash queued",
		"key", key,
		"message", message,
		"error", err,
	)

	return err
}

// PopFlashes drains and returns the queued notices for the session. Notices
// are delivered at most once; a second call returns an empty slice.
func (s *Store) PopFlashes(ctx context.Context, sessionID string) ([]string, error) {
	key := flashKey(sessionID)

	pipe := s.client.TxPipeline()
	lrange := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.Log.Errorw("flash drain failed", "key", key, "error", err)
		return nil, err
	}

	return lrange.Val(), nil
}
