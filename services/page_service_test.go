package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-app/models"
)

func page(id uint, parentID *uint) models.Page {
	p := models.Page{ParentID: parentID}
	p.ID = id
	return p
}

func TestWouldCreateCycle_SelfParent(t *testing.T) {
	pages := []models.Page{page(1, nil)}
	assert.True(t, WouldCreateCycle(pages, 1, uintPtr(1)))
}

func TestWouldCreateCycle_DirectLoop(t *testing.T) {
	// 2 is a child of 1; making 1 a child of 2 closes the loop.
	pages := []models.Page{
		page(1, nil),
		page(2, uintPtr(1)),
	}
	assert.True(t, WouldCreateCycle(pages, 1, uintPtr(2)))
}

func TestWouldCreateCycle_DeepLoop(t *testing.T) {
	pages := []models.Page{
		page(1, nil),
		page(2, uintPtr(1)),
		page(3, uintPtr(2)),
	}
	assert.True(t, WouldCreateCycle(pages, 1, uintPtr(3)))
	assert.False(t, WouldCreateCycle(pages, 3, uintPtr(1)), "reparenting a leaf under the root is fine")
}

func TestWouldCreateCycle_NilOrDanglingParent(t *testing.T) {
	pages := []models.Page{page(1, nil)}
	assert.False(t, WouldCreateCycle(pages, 1, nil))
	assert.False(t, WouldCreateCycle(pages, 1, uintPtr(42)), "a parent outside the set cannot loop back")
}

func TestBuildPageTree(t *testing.T) {
	pages := []models.Page{
		page(1, nil),
		page(2, uintPtr(1)),
		page(3, uintPtr(1)),
		page(4, uintPtr(99)),
	}
	pages[0].Title, pages[0].PageOrder = "Home", 1
	pages[1].Title, pages[1].PageOrder = "About", 2
	pages[2].Title, pages[2].PageOrder = "Team", 1
	pages[3].Title, pages[3].PageOrder = "Orphan", 0

	tree := BuildPageTree(pages)
	require.Len(t, tree, 2)
	assert.Equal(t, "Orphan", tree[0].Title)
	assert.Equal(t, "Home", tree[1].Title)

	require.Len(t, tree[1].Children, 2)
	assert.Equal(t, "Team", tree[1].Children[0].Title)
	assert.Equal(t, "About", tree[1].Children[1].Title)
}
