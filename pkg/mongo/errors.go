package mongo

import "errors"

var (
	ErrEmptyConnectionURL     = errors.New("mongo: MONGODB_URL is empty")
	ErrFailedToConnectToMongo = errors.New("mongo: settings backend unreachable after retries")
	ErrHealthcheckFailed      = errors.New("mongo: settings backend did not answer ping")
)
