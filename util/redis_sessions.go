package util

import (
	"context"
	"fmt"

	"github.com/ariebrainware/hospital-front-office/config"
	"github.com/redis/go-redis/v9"
)

// AddSessionToUserSet adds the session token to the per-user Redis set and
// mirrors the session itself under session:<token>. Best-effort: a nil Redis
// client is a no-op, the sessions table stays authoritative.
func AddSessionToUserSet(userID uint, token, value string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	ctx := context.Background()
	if err := rdb.Set(ctx, fmt.Sprintf("session:%s", token), value, 0).Err(); err != nil {
		return err
	}
	userSetKey := fmt.Sprintf("user_sessions:%d", userID)
	return rdb.SAdd(ctx, userSetKey, token).Err()
}

// RemoveSessionTokenFromUserSet removes a single session token from the per-user set
// and deletes the mirrored session key. If the set becomes empty after removal, it
// is deleted.
func RemoveSessionTokenFromUserSet(userID uint, token string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	ctx := context.Background()
	_ = rdb.Del(ctx, fmt.Sprintf("session:%s", token)).Err()

	userSetKey := fmt.Sprintf("user_sessions:%d", userID)
	script := `
		local removed = redis.call('SREM', KEYS[1], ARGV[1])
		if removed > 0 then
			local count = redis.call('SCARD', KEYS[1])
			if count == 0 then
				redis.call('DEL', KEYS[1])
			end
		end
		return removed
	`
	return rdb.Eval(ctx, script, []string{userSetKey}, token).Err()
}

// InvalidateUserSessions deletes all session:<token> keys for the given user and
// removes the per-user set. Used when an account gets locked.
func InvalidateUserSessions(userID uint) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	ctx := context.Background()
	userSetKey := fmt.Sprintf("user_sessions:%d", userID)
	members, err := rdb.SMembers(ctx, userSetKey).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	for _, tok := range members {
		_ = rdb.Del(ctx, fmt.Sprintf("session:%s", tok)).Err()
	}
	return rdb.Del(ctx, userSetKey).Err()
}
