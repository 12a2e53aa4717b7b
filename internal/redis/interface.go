package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client wraps redis.UniversalClient so repositories can be tested
// against a mock or a miniredis-backed instance interchangeably.
type Client interface {
	redis.UniversalClient
}
