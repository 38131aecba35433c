package cache

const (
	// CacheVersion is the API version prefix for cache keys.
	CacheVersion = "v1"

	// SessionByIDKey is the cache key template for admin session records.
	SessionByIDKey = CacheVersion + ":session:%s"

	// UserCensusLockKey guards the periodic user cache census.
	UserCensusLockKey = CacheVersion + ":lock:user_census"
)
