package redis

import "errors"

var (
	ErrEmptyConnectionURL           = errors.New("redis: REDIS_URL is empty")
	ErrFailedToParseRedisConnString = errors.New("redis: malformed connection url")
	ErrRedisNotReady                = errors.New("redis: settings backend unreachable after retries")
	ErrHealthcheckFailed            = errors.New("redis: settings backend did not answer ping")
)
