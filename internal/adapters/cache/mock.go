package cache

import (
	"runtime"
	"sync"
)

// Tick-based cache for deterministic concurrency tests: every client must
// call wait() before the server advances the shared tick, so interleavings
// of overlapping fetches can be scripted exactly.

type mockCacheServerEntry[T any] struct {
	data       T
	valid      bool
	insertedAt int
}

type mockCacheServer[T any] struct {
	cache             map[string]mockCacheServerEntry[T]
	cacheLock         sync.Mutex
	tickLock          sync.Mutex
	currentTick       int
	maxTicks          int
	numGoroutines     int
	completedThisTick int
}

type mockCacheClient[T any] struct {
	server      *mockCacheServer[T]
	desiredTick int
}

func (client *mockCacheClient[T]) getOrClaim(key string) hitResult[T] {
	client.server.cacheLock.Lock()
	defer client.server.cacheLock.Unlock()

	oldValue, ok := client.server.cache[key]
	if ok {
		return hitResult[T]{
			data:    oldValue.data,
			valid:   oldValue.valid,
			claimed: false,
		}
	}

	client.server.cache[key] = mockCacheServerEntry[T]{
		valid:      false,
		insertedAt: client.server.currentTick,
	}
	return hitResult[T]{
		valid:   false,
		claimed: true,
	}
}

func (client *mockCacheClient[T]) set(key string, data T) {
	client.server.cacheLock.Lock()
	defer client.server.cacheLock.Unlock()

	client.server.cache[key] = mockCacheServerEntry[T]{
		data:       data,
		valid:      true,
		insertedAt: client.server.currentTick,
	}
}

func (client *mockCacheClient[T]) delete(key string) {
	client.server.cacheLock.Lock()
	defer client.server.cacheLock.Unlock()

	delete(client.server.cache, key)
}

func (client *mockCacheClient[T]) wait() {
	if client.server.isDone() {
		panic("wait() called on a client that is already done")
	}

	client.server.tickLock.Lock()
	client.server.completedThisTick++
	client.server.tickLock.Unlock()

	client.desiredTick++

	for client.server.currentTick < client.desiredTick {
		runtime.Gosched()
	}
}

func (client *mockCacheClient[T]) waitUntilDone() {
	for !client.server.isDone() {
		client.wait()
	}
}

func (server *mockCacheServer[T]) isDone() bool {
	return server.currentTick >= server.maxTicks
}

func (server *mockCacheServer[T]) processTicks() {
	for !server.isDone() {
		if server.completedThisTick != server.numGoroutines {
			runtime.Gosched()
			continue
		}

		server.tickLock.Lock()
		server.completedThisTick = 0
		server.currentTick++
		server.tickLock.Unlock()
	}
}

func NewMockCacheServer[T any](numGoroutines int, maxTicks int) (*mockCacheServer[T], []*mockCacheClient[T]) {
	server := &mockCacheServer[T]{
		cache:             make(map[string]mockCacheServerEntry[T]),
		tickLock:          sync.Mutex{},
		currentTick:       0,
		maxTicks:          maxTicks,
		numGoroutines:     numGoroutines,
		completedThisTick: 0,
	}

	clients := make([]*mockCacheClient[T], numGoroutines)
	for i := range numGoroutines {
		clients[i] = &mockCacheClient[T]{
			server:      server,
			desiredTick: 0,
		}
	}

	return server, clients
}
