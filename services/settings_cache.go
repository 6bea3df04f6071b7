package services

import (
	"sync"
	"time"

	"storefront-app/models"
)

type settingsEntry struct {
	value     *models.Setting
	expiresAt time.Time
}

// SettingsCache is a small TTL cache for the per-tenant settings row, so
// that menu resolution and checkout checks do not hit the database on
// every request. Keyed by tenant database name.
type SettingsCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]settingsEntry
}

// Settings is the shared cache used by the controllers; main replaces it
// with the configured TTL at startup.
var Settings = NewSettingsCache(time.Minute)

func InitSettingsCache(ttl time.Duration) {
	Settings = NewSettingsCache(ttl)
}

func NewSettingsCache(ttl time.Duration) *SettingsCache {
	return &SettingsCache{
		ttl:     ttl,
		entries: make(map[string]settingsEntry),
	}
}

// Get returns the cached settings for the tenant, loading through the
// given loader on a miss or after expiry. A loader returning (nil, nil)
// means the tenant has no settings row yet; that is cached too.
func (c *SettingsCache) Get(tenant string, load func() (*models.Setting, error)) (*models.Setting, error) {
	c.mu.Lock()
	if e, ok := c.entries[tenant]; ok && time.Now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	value, err := load()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[tenant] = settingsEntry{value: value, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return value, nil
}

// Invalidate drops the cached row for a tenant, called after settings
// updates so the next read sees fresh values.
func (c *SettingsCache) Invalidate(tenant string) {
	c.mu.Lock()
	delete(c.entries, tenant)
	c.mu.Unlock()
}
