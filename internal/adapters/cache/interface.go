package cache

type hitResult[T any] struct {
	data    T
	valid   bool
	claimed bool
}

// Cache tracks one entry per key with an explicit claim lifecycle. A missing
// key is claimed at call time, so callers that overlap before the first
// fetch resolves join the in-flight request instead of issuing their own.
type Cache[T any] interface {
	getOrClaim(key string) hitResult[T]
	set(key string, data T)
	delete(key string)
	wait()
}
