package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/utils"
)

// TokenStore keeps refresh tokens in Redis so a restart does not invalidate
// sessions and expiry is handled by key TTL instead of a sweeper.
type TokenStore interface {
	SaveRefreshToken(ctx context.Context, refreshToken string, userID uuid.UUID, ttl time.Duration) error
	ResolveRefreshToken(ctx context.Context, refreshToken string) (uuid.UUID, error)
	DeleteRefreshToken(ctx context.Context, refreshToken string) error
	DeleteUserTokens(ctx context.Context, userID uuid.UUID) error
	Close() error
}

type tokenStore struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewTokenStore(log *logger.Logger) (TokenStore, error) {
	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "localhost:6379", log))

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &tokenStore{
		log: log.With("service", "RedisTokenStore"),
		rdb: rdb,
	}, nil
}

func refreshKey(token string) string {
	return "refresh_token:" + token
}

func userTokensKey(userID uuid.UUID) string {
	return "user_tokens:" + userID.String()
}

func (ts *tokenStore) SaveRefreshToken(ctx context.Context, refreshToken string, userID uuid.UUID, ttl time.Duration) error {
	if err := ts.rdb.Set(ctx, refreshKey(refreshToken), userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	// Track the user's tokens so logout-everywhere can find them. The set
	// outlives individual tokens; stale members are tolerated on delete.
	if err := ts.rdb.SAdd(ctx, userTokensKey(userID), refreshToken).Err(); err != nil {
		ts.log.Warn("Could not index refresh token for user", "user_id", userID, "error", err)
	}
	return nil
}

func (ts *tokenStore) ResolveRefreshToken(ctx context.Context, refreshToken string) (uuid.UUID, error) {
	val, err := ts.rdb.Get(ctx, refreshKey(refreshToken)).Result()
	if err == goredis.Nil {
		return uuid.Nil, fmt.Errorf("refresh token not found or expired")
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve refresh token: %w", err)
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("stored user id is not a uuid: %w", err)
	}
	return userID, nil
}

func (ts *tokenStore) DeleteRefreshToken(ctx context.Context, refreshToken string) error {
	return ts.rdb.Del(ctx, refreshKey(refreshToken)).Err()
}

func (ts *tokenStore) DeleteUserTokens(ctx context.Context, userID uuid.UUID) error {
	tokens, err := ts.rdb.SMembers(ctx, userTokensKey(userID)).Result()
	if err != nil && err != goredis.Nil {
		return fmt.Errorf("list user tokens: %w", err)
	}
	for _, tok := range tokens {
		if err := ts.rdb.Del(ctx, refreshKey(tok)).Err(); err != nil {
			ts.log.Warn("Could not delete refresh token", "error", err)
		}
	}
	return ts.rdb.Del(ctx, userTokensKey(userID)).Err()
}

func (ts *tokenStore) Close() error {
	return ts.rdb.Close()
}
