// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered diagrams are cheap to rebuild; keep them for half an hour
	renderCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered tree diagrams. A non-positive
// expiration uses the default.
func NewRenderCache(expiration time.Duration) *cache.Cache {
	if expiration <= 0 {
		expiration = renderCacheExpiration
	}
	return cache.New(expiration, renderCacheCleanup)
}

// renderKey identifies one state of one tree. Any mutation bumps the
// version, so stale diagrams are never served.
func renderKey(name string, version uint64, withValues bool) string {
	if withValues {
		return fmt.Sprintf("%s@%d+v", name, version)
	}
	return fmt.Sprintf("%s@%d", name, version)
}

func CacheRendering(c *cache.Cache, key string, diagram string) {
	c.Set(key, diagram, cache.DefaultExpiration)
}

func GetRendering(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}
