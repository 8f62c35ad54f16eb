package cache

import (
	"hash/maphash"
	"time"

	"github.com/guttosm/courier-portal/internal/metrics"
)

// Sharded distributes entries across multiple TTL caches to reduce lock contention.
// Shards share one metrics label; the size gauge is not kept for sharded caches.
type Sharded[K comparable, V any] struct {
	shards    []*TTL[K, V]
	numShards int
	shardMask uint64
	seed      maphash.Seed
}

// NewSharded creates a sharded cache with the specified total capacity, TTL and
// number of shards. numShards is rounded up to a power of 2; zero or negative
// means 16.
func NewSharded[K comparable, V any](name string, capacity int, ttl time.Duration, numShards int) *Sharded[K, V] {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	numShards = n

	perShardCapacity := capacity / numShards
	if perShardCapacity < 1 {
		perShardCapacity = 1
	}

	shards := make([]*TTL[K, V], numShards)
	for i := range shards {
		shards[i] = newTTL[K, V](name, perShardCapacity, ttl, false)
	}

	metrics.UpdateCacheMetrics(name, 0, perShardCapacity*numShards)

	return &Sharded[K, V]{
		shards:    shards,
		numShards: numShards,
		shardMask: uint64(numShards - 1),
		seed:      maphash.MakeSeed(),
	}
}

func (sc *Sharded[K, V]) shard(key K) *TTL[K, V] {
	return sc.shards[maphash.Comparable(sc.seed, key)&sc.shardMask]
}

// Get retrieves a value from the appropriate shard.
func (sc *Sharded[K, V]) Get(key K) (V, bool) {
	return sc.shard(key).Get(key)
}

// Set stores a value in the appropriate shard.
func (sc *Sharded[K, V]) Set(key K, value V) {
	sc.shard(key).Set(key, value)
}

// Invalidate removes a key from the appropriate shard.
func (sc *Sharded[K, V]) Invalidate(key K) {
	sc.shard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (sc *Sharded[K, V]) Clear() {
	for _, shard := range sc.shards {
		shard.Clear()
	}
}

// Stop gracefully shuts down all shards.
func (sc *Sharded[K, V]) Stop() {
	for _, shard := range sc.shards {
		shard.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (sc *Sharded[K, V]) Metrics() Metrics {
	var total Metrics
	for _, shard := range sc.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}
