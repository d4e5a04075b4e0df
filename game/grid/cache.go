// Copyright ©2020 BlinnikovAA. All rights reserved.
// This file is part of yagogame.
//
// yagogame is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yagogame is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with yagogame.  If not, see <https://www.gnu.org/licenses/>.

package grid

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/yagoggame/chipgrid/game/interfaces"
)

// CacheConfig sizes the cache of a CachedResolver.
type CacheConfig struct {
	NumCounters int64
	MaxCost     int64
}

// DefaultCacheConfig fits every (cell, offset) pair of the board.
var DefaultCacheConfig = CacheConfig{
	NumCounters: 10 * Cells * int64(len(evenOffsets)),
	MaxCost:     Cells * int64(len(evenOffsets)),
}

// CachedResolver memoizes the answers of another resolver. Ranges never
// change, so a cached answer stays valid for the life of the process.
// Errors are not cached.
type CachedResolver struct {
	next  interfaces.Resolver
	cache *ristretto.Cache[uint64, bool]
}

// NewCachedResolver wraps next with a cache sized by cfg.
// The returned resolver must be closed after use.
func NewCachedResolver(next interfaces.Resolver, cfg CacheConfig) (*CachedResolver, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, bool]{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: 64,
		// every entry costs 1, whatever its size in memory
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create range cache: %w", err)
	}
	return &CachedResolver{next: next, cache: cache}, nil
}

// IsValidTarget answers from the cache, asking the wrapped resolver on a miss.
func (r *CachedResolver) IsValidTarget(origin, offset int) (bool, error) {
	key := rangeKey(origin, offset)
	if ok, found := r.cache.Get(key); found {
		return ok, nil
	}

	ok, err := r.next.IsValidTarget(origin, offset)
	if err != nil {
		return false, err
	}
	r.cache.Set(key, ok, 1)
	return ok, nil
}

// Wait blocks until pending cache writes are visible to readers.
func (r *CachedResolver) Wait() {
	r.cache.Wait()
}

// Close releases the cache.
func (r *CachedResolver) Close() {
	r.cache.Close()
}

func rangeKey(origin, offset int) uint64 {
	return uint64(uint32(int32(origin)))<<32 | uint64(uint32(int32(offset)))
}
