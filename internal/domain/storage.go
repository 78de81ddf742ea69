package domain

// LocalStorage is durable per-profile key/value storage for small
// markers (visitor session id, last-tracked date). Implementations
// never fail loudly: reads return absent and writes no-op when the
// underlying store is unavailable, so callers degrade instead of
// crashing.
type LocalStorage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// SnapshotStore persists last-known query results so a restart can show
// stale content while the backend handle is still connecting.
// Keys mirror the query cache keys, so prefix deletion tracks the same
// invalidation edges.
type SnapshotStore interface {
	GetSnapshot(key string) ([]byte, bool)
	SaveSnapshot(key string, data []byte) error
	DeleteSnapshots(prefix string)
	Clear()
}
