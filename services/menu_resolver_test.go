package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func entryIDs(items []MenuEntry) []uint {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestFilterByRole_EmptyUserRoles(t *testing.T) {
	items := []MenuEntry{
		{ID: 1, Name: "Dashboard"},
		{ID: 2, Name: "Users", RequiredRoles: []string{"Admin"}},
		{ID: 3, Name: "Orders", RequiredRoles: []string{}},
	}

	got := FilterByRole(items, []string{})

	// Only entries without a role requirement survive an empty role list.
	assert.Equal(t, []uint{1, 3}, entryIDs(got))
}

func TestFilterByRole_AnyOfSemantics(t *testing.T) {
	items := []MenuEntry{
		{ID: 1, Name: "Reports", RequiredRoles: []string{"Admin", "Manager"}},
	}

	got := FilterByRole(items, []string{"Manager"})
	assert.Len(t, got, 1, "one matching role is enough")

	got = FilterByRole(items, []string{"Clerk"})
	assert.Empty(t, got)
}

func TestFilterByRole_PreservesInputOrder(t *testing.T) {
	items := []MenuEntry{
		{ID: 5, RequiredRoles: []string{"Admin"}},
		{ID: 2},
		{ID: 9, RequiredRoles: []string{"Admin"}},
	}

	got := FilterByRole(items, []string{"Admin"})
	assert.Equal(t, []uint{5, 2, 9}, entryIDs(got))
}

func TestFilterByPermission_Wildcard(t *testing.T) {
	items := []MenuEntry{
		{ID: 1, RequiredPermissions: []string{"orders:read", "orders:write"}},
		{ID: 2},
		{ID: 3, RequiredPermissions: []string{"settings:write"}},
	}

	got := FilterByPermission(items, []string{WildcardPermission})
	assert.Equal(t, entryIDs(items), entryIDs(got), "wildcard passes everything")
}

func TestFilterByPermission_AllOfSemantics(t *testing.T) {
	items := []MenuEntry{
		{ID: 1, RequiredPermissions: []string{"orders:read", "orders:write"}},
	}

	got := FilterByPermission(items, []string{"orders:read"})
	assert.Empty(t, got, "holding one of two required permissions is not enough")

	got = FilterByPermission(items, []string{"orders:read", "orders:write"})
	assert.Len(t, got, 1)
}

// The role filter is any-of while the permission filter is all-of. Both
// asserted side by side because the asymmetry is load-bearing.
func TestRolePermissionAsymmetry(t *testing.T) {
	roleItem := []MenuEntry{{ID: 1, RequiredRoles: []string{"Admin", "Manager"}}}
	permItem := []MenuEntry{{ID: 1, RequiredPermissions: []string{"read", "write"}}}

	assert.Len(t, FilterByRole(roleItem, []string{"Manager"}), 1)
	assert.Empty(t, FilterByPermission(permItem, []string{"read"}))
	assert.Len(t, FilterByPermission(permItem, []string{"read", "write"}), 1)
}

func TestFilterByFeatureFlags_NilSettingsFailsClosed(t *testing.T) {
	items := []MenuEntry{
		{ID: 1},
		{ID: 2, FeatureFlag: FlagShippingEnabled},
		{ID: 3, FeatureFlag: FlagBlog},
		{ID: 4},
	}

	got := FilterByFeatureFlags(items, nil)
	assert.Equal(t, []uint{1, 4}, entryIDs(got), "every flagged entry drops when no settings exist")
}

func TestFilterByFeatureFlags_InventoryToggle(t *testing.T) {
	items := []MenuEntry{{ID: 1, FeatureFlag: FlagInventoryEnabled}}

	got := FilterByFeatureFlags(items, &FeatureSettings{TrackInventory: false})
	assert.Empty(t, got)

	got = FilterByFeatureFlags(items, &FeatureSettings{TrackInventory: true})
	assert.Len(t, got, 1)
}

func TestFilterByFeatureFlags_Toggles(t *testing.T) {
	settings := &FeatureSettings{ShippingEnabled: true, CodEnabled: false, PortalEnabled: true}
	items := []MenuEntry{
		{ID: 1, FeatureFlag: FlagEcommerce},
		{ID: 2, FeatureFlag: FlagEcommerceEnabled},
		{ID: 3, FeatureFlag: FlagShippingEnabled},
		{ID: 4, FeatureFlag: FlagCodEnabled},
		{ID: 5, FeatureFlag: FlagPortalEnabled},
		{ID: 6, FeatureFlag: FlagBlog},
	}

	got := FilterByFeatureFlags(items, settings)
	assert.Equal(t, []uint{1, 2, 3, 5, 6}, entryIDs(got))
}

func TestFilterByFeatureFlags_UnknownFlagPasses(t *testing.T) {
	items := []MenuEntry{{ID: 1, FeatureFlag: "loyalty_enabled"}}

	got := FilterByFeatureFlags(items, &FeatureSettings{})
	assert.Len(t, got, 1, "unknown flags pass when settings exist")

	got = FilterByFeatureFlags(items, nil)
	assert.Empty(t, got, "but still drop when no settings exist at all")
}

func TestBuildHierarchy_Empty(t *testing.T) {
	assert.Empty(t, BuildHierarchy(nil))
	assert.Empty(t, BuildHierarchy([]MenuEntry{}))
}

func TestBuildHierarchy_SortsChildrenByOrder(t *testing.T) {
	items := []MenuEntry{
		{ID: 1, Order: 1},
		{ID: 2, ParentID: uintPtr(1), Order: 2},
		{ID: 3, ParentID: uintPtr(1), Order: 1},
	}

	roots := BuildHierarchy(items)
	require.Len(t, roots, 1)
	assert.Equal(t, uint(1), roots[0].ID)

	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, uint(3), roots[0].Children[0].ID, "children sort by order, not input order")
	assert.Equal(t, uint(2), roots[0].Children[1].ID)
}

func TestBuildHierarchy_StableForEqualOrder(t *testing.T) {
	items := []MenuEntry{
		{ID: 1, Order: 0},
		{ID: 10, ParentID: uintPtr(1), Order: 5},
		{ID: 11, ParentID: uintPtr(1), Order: 5},
		{ID: 12, ParentID: uintPtr(1), Order: 5},
	}

	roots := BuildHierarchy(items)
	require.Len(t, roots, 1)
	assert.Equal(t, uint(10), roots[0].Children[0].ID)
	assert.Equal(t, uint(11), roots[0].Children[1].ID)
	assert.Equal(t, uint(12), roots[0].Children[2].ID)
}

func TestBuildHierarchy_DanglingParentBecomesRoot(t *testing.T) {
	items := []MenuEntry{
		{ID: 1, Order: 2},
		{ID: 2, ParentID: uintPtr(99), Order: 1},
	}

	roots := BuildHierarchy(items)
	require.Len(t, roots, 2, "a missing parent does not raise, the child joins the roots")
	assert.Equal(t, uint(2), roots[0].ID, "root list sorts by order too")
	assert.Equal(t, uint(1), roots[1].ID)
}

func TestBuildHierarchy_NestedLevels(t *testing.T) {
	items := []MenuEntry{
		{ID: 1, Order: 1},
		{ID: 2, ParentID: uintPtr(1), Order: 1},
		{ID: 3, ParentID: uintPtr(2), Order: 1},
	}

	roots := BuildHierarchy(items)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, uint(3), roots[0].Children[0].Children[0].ID)
}

func TestCascadeVisibility_HiddenParentHidesChild(t *testing.T) {
	items := []MenuEntry{
		{ID: 1},
		{ID: 2, ParentID: uintPtr(1)},
		{ID: 3, ParentID: uintPtr(2)},
	}
	// Child 2 and grandchild 3 are individually visible, parent 1 is not.
	visible := map[uint]bool{2: true, 3: true}

	got := CascadeVisibility(items, visible)
	assert.Empty(t, got, "ancestor visibility dominates child visibility")
}

func TestCascadeVisibility_RootVisibility(t *testing.T) {
	items := []MenuEntry{
		{ID: 1},
		{ID: 2},
	}

	got := CascadeVisibility(items, map[uint]bool{1: true})
	assert.Equal(t, []uint{1}, entryIDs(got))
}

func TestCascadeVisibility_DanglingParentDoesNotBlock(t *testing.T) {
	items := []MenuEntry{
		{ID: 2, ParentID: uintPtr(99)},
	}

	got := CascadeVisibility(items, map[uint]bool{2: true})
	assert.Len(t, got, 1, "only an existing but invisible parent blocks a child")
}

func TestCascadeVisibility_FullChainVisible(t *testing.T) {
	items := []MenuEntry{
		{ID: 1},
		{ID: 2, ParentID: uintPtr(1)},
		{ID: 3, ParentID: uintPtr(2)},
	}

	got := CascadeVisibility(items, map[uint]bool{1: true, 2: true, 3: true})
	assert.Equal(t, []uint{1, 2, 3}, entryIDs(got))
}

func TestCascadeVisibility_ParentCycleTerminates(t *testing.T) {
	// A <-> B should never reach this layer, but the walk must not hang
	// on it either.
	items := []MenuEntry{
		{ID: 1, ParentID: uintPtr(2)},
		{ID: 2, ParentID: uintPtr(1)},
	}

	got := CascadeVisibility(items, map[uint]bool{1: true, 2: true})
	assert.Equal(t, []uint{1, 2}, entryIDs(got))

	got = CascadeVisibility(items, map[uint]bool{1: true})
	assert.Empty(t, got)
}

// The three filters only remove entries and none depends on another's
// output, so any application order yields the same set.
func TestFilters_OrderIndependent(t *testing.T) {
	items := []MenuEntry{
		{ID: 1},
		{ID: 2, RequiredRoles: []string{"Admin"}},
		{ID: 3, RequiredPermissions: []string{"orders:read", "orders:write"}},
		{ID: 4, FeatureFlag: FlagCodEnabled},
		{ID: 5, RequiredRoles: []string{"Manager"}, FeatureFlag: FlagShippingEnabled},
	}
	roles := []string{"Admin"}
	perms := []string{"orders:read"}
	settings := &FeatureSettings{ShippingEnabled: true, CodEnabled: true}

	a := FilterByFeatureFlags(FilterByPermission(FilterByRole(items, roles), perms), settings)
	b := FilterByRole(FilterByFeatureFlags(FilterByPermission(items, perms), settings), roles)
	c := FilterByPermission(FilterByRole(FilterByFeatureFlags(items, settings), roles), perms)

	assert.Equal(t, entryIDs(a), entryIDs(b))
	assert.Equal(t, entryIDs(b), entryIDs(c))
	assert.Equal(t, []uint{1, 2, 4}, entryIDs(a))
}

func TestResolveMenu_EndToEnd(t *testing.T) {
	items := []MenuEntry{
		{ID: 1, Name: "Dashboard", Order: 1},
		{ID: 2, Name: "Catalog", Order: 2},
		{ID: 3, Name: "Products", ParentID: uintPtr(2), Order: 1},
		{ID: 4, Name: "Inventory", ParentID: uintPtr(2), Order: 2, FeatureFlag: FlagInventoryEnabled},
		{ID: 5, Name: "Settings", Order: 9, RequiredRoles: []string{"Admin"}},
		{ID: 6, Name: "Store", ParentID: uintPtr(5), Order: 1, RequiredPermissions: []string{"settings:write"}},
	}

	roots := ResolveMenu(items,
		[]string{"Manager"},
		[]string{"settings:write"},
		&FeatureSettings{TrackInventory: true},
	)

	// Settings (id 5) fails the role filter, so its child Store becomes a
	// root after hierarchy assembly, sorted among the roots by its own
	// order value (1, tied with Dashboard, so input order breaks the tie).
	require.Len(t, roots, 3)
	assert.Equal(t, uint(1), roots[0].ID)
	assert.Equal(t, uint(6), roots[1].ID)
	assert.Equal(t, uint(2), roots[2].ID)

	require.Len(t, roots[2].Children, 2)
	assert.Equal(t, uint(3), roots[2].Children[0].ID)
	assert.Equal(t, uint(4), roots[2].Children[1].ID)
}
