package cache

import "time"

// Cache defines the interface for caching backends.
//
// Get returns an empty string and a nil error when the key is absent or
// expired; callers treat the empty string as a miss.
type Cache interface {
	Get(key string) (string, error)
	Set(key string, value interface{}, expiration time.Duration) error
	Delete(key string) error
}
