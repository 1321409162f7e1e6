package messagecache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache remembers recently handled WhatsApp message IDs so platform
// redeliveries of the same notification are answered only once.
type Cache struct {
	cache *cache.Cache
}

// New creates a cache whose entries expire after ttl.
func New(ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{
		cache: cache.New(ttl, cleanupInterval),
	}
}

// MarkSeen records messageID and reports whether it had already been recorded
// within the TTL. Empty IDs are never considered seen.
func (c *Cache) MarkSeen(messageID string) bool {
	if messageID == "" {
		return false
	}
	// Add fails when the key exists and has not expired, which makes the
	// check-and-set atomic across concurrent requests.
	return c.cache.Add(messageID, struct{}{}, cache.DefaultExpiration) != nil
}

// Forget drops messageID so a later delivery is processed again.
func (c *Cache) Forget(messageID string) {
	c.cache.Delete(messageID)
}
