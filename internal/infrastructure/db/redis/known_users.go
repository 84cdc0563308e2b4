package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const DefaultKnownUsersKey = "users:known"

// KnownUsers answers membership with SISMEMBER against a Redis set.
// The set is written once by Seed at startup and only read afterwards.
type KnownUsers struct {
	client *redis.Client
	key    string
}

func NewKnownUsers(client *redis.Client, key string) *KnownUsers {
	if key == "" {
		key = DefaultKnownUsersKey
	}
	return &KnownUsers{client: client, key: key}
}

// Seed replaces the set with ids in a single transaction.
func (k *KnownUsers) Seed(ctx context.Context, ids []int) error {
	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = strconv.Itoa(id)
	}

	_, err := k.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k.key)
		if len(members) > 0 {
			pipe.SAdd(ctx, k.key, members...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed known users: %w", err)
	}
	return nil
}

func (k *KnownUsers) Exists(ctx context.Context, userID int) (bool, error) {
	ok, err := k.client.SIsMember(ctx, k.key, strconv.Itoa(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("known users lookup: %w", err)
	}
	return ok, nil
}

// Ping reports whether the backing Redis is reachable.
func (k *KnownUsers) Ping(ctx context.Context) error {
	return k.client.Ping(ctx).Err()
}
