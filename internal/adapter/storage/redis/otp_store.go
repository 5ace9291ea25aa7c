package redis

import (
	"context"
	"fmt"
	"time"

	"secure-wallet-core/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// OTPStore implements ports.OTPStore using a Redis hash per subject.
// One outstanding challenge per subject; issuing a new one replaces the old.
// The key TTL enforces the validity window even if Consume is never called.
type OTPStore struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewOTPStore creates a new Redis-backed OTP store.
func NewOTPStore(client *goredis.Client) *OTPStore {
	return &OTPStore{
		client: client,
		prefix: "otp:",
		now:    time.Now,
	}
}

// consumeScript evaluates one verification attempt atomically. Checking,
// decrementing and deleting in a single script closes the race where two
// concurrent attempts could both observe the last remaining attempt.
// A purpose mismatch does not spend an attempt.
var consumeScript = goredis.NewScript(`
local key = KEYS[1]
if redis.call('EXISTS', key) == 0 then
  return {'NOT_FOUND', 0}
end
if redis.call('HGET', key, 'purpose') ~= ARGV[1] then
  local left = tonumber(redis.call('HGET', key, 'attempts'))
  return {'PURPOSE_MISMATCH', left}
end
local expires = tonumber(redis.call('HGET', key, 'expires_at'))
if expires < tonumber(ARGV[3]) then
  redis.call('DEL', key)
  return {'EXPIRED', 0}
end
local left = tonumber(redis.call('HGET', key, 'attempts'))
if left <= 0 then
  return {'ATTEMPTS_EXHAUSTED', 0}
end
if redis.call('HGET', key, 'code') == ARGV[2] then
  redis.call('DEL', key)
  return {'VERIFIED', left}
end
left = redis.call('HINCRBY', key, 'attempts', -1)
return {'CODE_MISMATCH', left}
`)

// Put stores a challenge, replacing any outstanding one for the subject.
func (s *OTPStore) Put(ctx context.Context, c *domain.OTPChallenge) error {
	key := s.prefix + c.SubjectID

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		"code", c.Code,
		"purpose", c.Purpose,
		"attempts", c.AttemptsLeft,
		"expires_at", c.ExpiresAt.UnixMilli(),
	)
	pipe.PExpireAt(ctx, key, c.ExpiresAt)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis otp put: %w", err)
	}
	return nil
}

// Consume atomically evaluates a verification attempt and returns the outcome
// plus the remaining attempt budget.
func (s *OTPStore) Consume(ctx context.Context, subjectID, purpose, code string) (domain.OTPVerifyOutcome, int, error) {
	key := s.prefix + subjectID
	nowMillis := s.now().UnixMilli()

	res, err := consumeScript.Run(ctx, s.client, []string{key}, purpose, code, nowMillis).Slice()
	if err != nil {
		return "", 0, fmt.Errorf("redis otp consume: %w", err)
	}
	if len(res) != 2 {
		return "", 0, fmt.Errorf("redis otp consume: unexpected reply %v", res)
	}

	outcome, ok := res[0].(string)
	if !ok {
		return "", 0, fmt.Errorf("redis otp consume: unexpected outcome type %T", res[0])
	}
	remaining, ok := res[1].(int64)
	if !ok {
		return "", 0, fmt.Errorf("redis otp consume: unexpected count type %T", res[1])
	}
	return domain.OTPVerifyOutcome(outcome), int(remaining), nil
}
