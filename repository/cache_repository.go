package repository

// CacheRepository stores string values by key. Get reports a miss with false;
// backends that fail on read report a miss too.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
