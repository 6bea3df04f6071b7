package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "summer-sale-2026", Slugify("Summer Sale 2026!"))
	assert.Equal(t, "hello-world", Slugify("  Hello,   World  "))
	assert.Equal(t, "caf-menu", Slugify("Café Menu"), "non-ascii collapses into the separator")
	assert.Equal(t, "untitled", Slugify("???"))
	assert.Equal(t, "untitled", Slugify(""))
}

func TestUniqueSlug_FreeBase(t *testing.T) {
	got := UniqueSlug("My Page", func(string) bool { return false })
	assert.Equal(t, "my-page", got)
}

func TestUniqueSlug_AppendsCounter(t *testing.T) {
	existing := map[string]bool{"my-page": true, "my-page-2": true}
	got := UniqueSlug("My Page", func(s string) bool { return existing[s] })
	assert.Equal(t, "my-page-3", got)
}
