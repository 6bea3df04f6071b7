package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-app/models"
)

func TestSettingsCache_HitWithinTTL(t *testing.T) {
	cache := NewSettingsCache(time.Minute)
	calls := 0
	load := func() (*models.Setting, error) {
		calls++
		return &models.Setting{StoreName: "Demo"}, nil
	}

	first, err := cache.Get("tenant_a", load)
	require.NoError(t, err)
	second, err := cache.Get("tenant_a", load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second read must come from the cache")
	assert.Same(t, first, second)
}

func TestSettingsCache_ExpiresAfterTTL(t *testing.T) {
	cache := NewSettingsCache(10 * time.Millisecond)
	calls := 0
	load := func() (*models.Setting, error) {
		calls++
		return &models.Setting{}, nil
	}

	_, err := cache.Get("tenant_a", load)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = cache.Get("tenant_a", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSettingsCache_TenantsAreIsolated(t *testing.T) {
	cache := NewSettingsCache(time.Minute)

	a, err := cache.Get("tenant_a", func() (*models.Setting, error) {
		return &models.Setting{StoreName: "A"}, nil
	})
	require.NoError(t, err)

	b, err := cache.Get("tenant_b", func() (*models.Setting, error) {
		return &models.Setting{StoreName: "B"}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, "A", a.StoreName)
	assert.Equal(t, "B", b.StoreName)
}

func TestSettingsCache_InvalidateForcesReload(t *testing.T) {
	cache := NewSettingsCache(time.Minute)
	calls := 0
	load := func() (*models.Setting, error) {
		calls++
		return &models.Setting{}, nil
	}

	_, _ = cache.Get("tenant_a", load)
	cache.Invalidate("tenant_a")
	_, _ = cache.Get("tenant_a", load)

	assert.Equal(t, 2, calls)
}

func TestSettingsCache_LoaderErrorNotCached(t *testing.T) {
	cache := NewSettingsCache(time.Minute)

	_, err := cache.Get("tenant_a", func() (*models.Setting, error) {
		return nil, errors.New("db down")
	})
	require.Error(t, err)

	got, err := cache.Get("tenant_a", func() (*models.Setting, error) {
		return &models.Setting{StoreName: "Back"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Back", got.StoreName)
}

func TestSettingsCache_CachesMissingRow(t *testing.T) {
	cache := NewSettingsCache(time.Minute)
	calls := 0

	got, err := cache.Get("tenant_a", func() (*models.Setting, error) {
		calls++
		return nil, nil
	})
	require.NoError(t, err)
	assert.Nil(t, got)

	_, _ = cache.Get("tenant_a", func() (*models.Setting, error) {
		calls++
		return nil, nil
	})
	assert.Equal(t, 1, calls, "a tenant without settings is cached as nil")
}
