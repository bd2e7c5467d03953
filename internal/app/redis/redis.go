package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"kanban/internal/app/config"

	"github.com/go-redis/redis/v8"
)

const jwtPrefix = "jwt.blacklist."

type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := &Client{}

	client.cfg = cfg

	redisClient := redis.NewClient(&redis.Options{
		Password:    cfg.Password,
		Username:    cfg.User,
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	client.client = redisClient

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}

	return client, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func getJWTKey(tokenID string) string {
	return jwtPrefix + tokenID
}

// WriteJWTToBlacklist помечает токен отозванным до истечения его срока
func (c *Client) WriteJWTToBlacklist(ctx context.Context, tokenID string, ttl time.Duration) error {
	return c.client.Set(ctx, getJWTKey(tokenID), true, ttl).Err()
}

func (c *Client) CheckJWTInBlacklist(ctx context.Context, tokenID string) (bool, error) {
	n, err := c.client.Exists(ctx, getJWTKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
