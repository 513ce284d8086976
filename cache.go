package transitcatalogue

import (
	"strconv"
	"strings"

	"github.com/bluele/gcache"
)

// DefaultCacheEntries bounds the response cache when server.cacheEntries is 0.
const DefaultCacheEntries = 1024

// ResponseCache memoises serialized responses in an LRU. The catalogue is
// immutable once the service is built, so entries never expire; they are
// only evicted when the cache is full.
type ResponseCache struct {
	responseCache gcache.Cache
}

// NewResponseCache creates a cache holding at most maxEntries bodies;
// 0 selects DefaultCacheEntries.
func NewResponseCache(maxEntries int) *ResponseCache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheEntries
	}
	return &ResponseCache{responseCache: gcache.New(maxEntries).LRU().Build()}
}

// memoKey quotes every part so names containing the separator cannot collide.
func (rc *ResponseCache) memoKey(args ...string) string {
	var b strings.Builder
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Quote(a))
	}
	return b.String()
}

// Get returns a cached body.
func (rc *ResponseCache) Get(key string) ([]byte, bool) {
	v, err := rc.responseCache.Get(key)
	if err != nil {
		return nil, false
	}
	buf, ok := v.([]byte)
	return buf, ok
}

// Put stores a body, evicting the least recently used one when full.
func (rc *ResponseCache) Put(key string, buf []byte) {
	_ = rc.responseCache.Set(key, buf)
}

// GetOrBuild returns the cached body for key or builds and stores it.
// Failed builds are not cached.
func (rc *ResponseCache) GetOrBuild(key string, build func() ([]byte, error)) ([]byte, error) {
	if buf, ok := rc.Get(key); ok {
		return buf, nil
	}
	buf, err := build()
	if err != nil {
		return nil, err
	}
	rc.Put(key, buf)
	return buf, nil
}

// Len returns the number of cached bodies.
func (rc *ResponseCache) Len() int {
	return rc.responseCache.Len(false)
}
