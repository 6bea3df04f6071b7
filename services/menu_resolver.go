package services

import "sort"

// MenuEntry is a flat, read-only snapshot of one menu row together with its
// access requirements. The resolver functions below only ever read these
// snapshots and return fresh slices, so they are safe to call concurrently
// across requests.
type MenuEntry struct {
	ID                  uint     `json:"id"`
	Name                string   `json:"name"`
	Path                string   `json:"path"`
	Icon                string   `json:"icon"`
	Order               int      `json:"menu_order"`
	ParentID            *uint    `json:"parent_id"`
	RequiredRoles       []string `json:"required_roles"`
	RequiredPermissions []string `json:"required_permissions"`
	FeatureFlag         string   `json:"feature_flag"`
}

// MenuNode is a resolved menu entry with its ordered children.
type MenuNode struct {
	ID       uint        `json:"id"`
	Name     string      `json:"name"`
	Path     string      `json:"path"`
	Icon     string      `json:"icon"`
	Order    int         `json:"menu_order"`
	Children []*MenuNode `json:"children"`
}

// FeatureSettings is the subset of the store settings consulted by the
// feature-flag filter. A nil *FeatureSettings means no settings row exists.
type FeatureSettings struct {
	TrackInventory  bool
	ShippingEnabled bool
	CodEnabled      bool
	PortalEnabled   bool
}

// WildcardPermission grants every permission.
const WildcardPermission = "*:*"

// Known feature-flag keys. Unknown keys pass the filter (see
// FilterByFeatureFlags); keeping the enumeration explicit makes that
// default arm visible instead of burying it in string dispatch.
const (
	FlagEcommerce        = "ecommerce"
	FlagEcommerceEnabled = "ecommerce_enabled"
	FlagInventoryEnabled = "inventory_enabled"
	FlagShippingEnabled  = "shipping_enabled"
	FlagCodEnabled       = "cod_enabled"
	FlagPortalEnabled    = "portal_enabled"
	FlagBlog             = "blog"
)

// FilterByRole keeps entries whose RequiredRoles is empty or shares at
// least one role with userRoles (any-of semantics). Input order is
// preserved.
func FilterByRole(items []MenuEntry, userRoles []string) []MenuEntry {
	held := make(map[string]bool, len(userRoles))
	for _, r := range userRoles {
		held[r] = true
	}

	out := make([]MenuEntry, 0, len(items))
	for _, it := range items {
		if len(it.RequiredRoles) == 0 {
			out = append(out, it)
			continue
		}
		for _, r := range it.RequiredRoles {
			if held[r] {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// FilterByPermission keeps entries whose RequiredPermissions is empty or
// fully covered by userPerms (all-of semantics, unlike the role filter's
// any-of). The wildcard "*:*" passes everything.
func FilterByPermission(items []MenuEntry, userPerms []string) []MenuEntry {
	held := make(map[string]bool, len(userPerms))
	for _, p := range userPerms {
		held[p] = true
	}

	if held[WildcardPermission] {
		out := make([]MenuEntry, len(items))
		copy(out, items)
		return out
	}

	out := make([]MenuEntry, 0, len(items))
	for _, it := range items {
		ok := true
		for _, p := range it.RequiredPermissions {
			if !held[p] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, it)
		}
	}
	return out
}

// FilterByFeatureFlags keeps entries whose FeatureFlag is satisfied by the
// store settings. Entries without a flag always pass. With nil settings
// every flagged entry is dropped. Unrecognized flag keys pass; that
// asymmetry with the nil-settings case comes from the product behavior and
// is kept as is.
func FilterByFeatureFlags(items []MenuEntry, settings *FeatureSettings) []MenuEntry {
	out := make([]MenuEntry, 0, len(items))
	for _, it := range items {
		if it.FeatureFlag == "" {
			out = append(out, it)
			continue
		}
		if settings == nil {
			continue
		}
		if flagEnabled(it.FeatureFlag, settings) {
			out = append(out, it)
		}
	}
	return out
}

func flagEnabled(flag string, settings *FeatureSettings) bool {
	switch flag {
	case FlagEcommerce, FlagEcommerceEnabled:
		// Having a settings row at all means the store is live.
		return true
	case FlagInventoryEnabled:
		return settings.TrackInventory
	case FlagShippingEnabled:
		return settings.ShippingEnabled
	case FlagCodEnabled:
		return settings.CodEnabled
	case FlagPortalEnabled:
		return settings.PortalEnabled
	case FlagBlog:
		return true
	default:
		// Unknown flags are not an error; the entry stays visible.
		return true
	}
}

// BuildHierarchy nests a flat menu list into a tree of roots. An entry
// whose ParentID is absent from items (filtered out earlier, or simply
// missing) becomes a root. Siblings are sorted ascending by Order at every
// level; ties keep their input order.
func BuildHierarchy(items []MenuEntry) []*MenuNode {
	nodes := make([]*MenuNode, len(items))
	index := make(map[uint]int, len(items))
	for i, it := range items {
		nodes[i] = &MenuNode{
			ID:       it.ID,
			Name:     it.Name,
			Path:     it.Path,
			Icon:     it.Icon,
			Order:    it.Order,
			Children: []*MenuNode{},
		}
		index[it.ID] = i
	}

	roots := []*MenuNode{}
	for i, it := range items {
		if it.ParentID != nil {
			if j, ok := index[*it.ParentID]; ok {
				nodes[j].Children = append(nodes[j].Children, nodes[i])
				continue
			}
		}
		roots = append(roots, nodes[i])
	}

	sortTree(roots)
	return roots
}

func sortTree(nodes []*MenuNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Order < nodes[j].Order
	})
	for _, n := range nodes {
		sortTree(n.Children)
	}
}

// CascadeVisibility keeps an entry only when its own id is in visibleIDs
// and every ancestor, walked through the full unfiltered items list, is
// visible too: a hidden parent hides all of its descendants. A ParentID
// that points outside items puts no constraint on the child, which differs
// from BuildHierarchy's treat-as-root handling on purpose. The walk keeps
// a seen set so malformed parent cycles terminate.
func CascadeVisibility(items []MenuEntry, visibleIDs map[uint]bool) []MenuEntry {
	index := make(map[uint]MenuEntry, len(items))
	for _, it := range items {
		index[it.ID] = it
	}

	out := make([]MenuEntry, 0, len(items))
	for _, it := range items {
		if chainVisible(it, index, visibleIDs) {
			out = append(out, it)
		}
	}
	return out
}

func chainVisible(it MenuEntry, index map[uint]MenuEntry, visibleIDs map[uint]bool) bool {
	seen := make(map[uint]bool)
	cur := it
	for {
		if !visibleIDs[cur.ID] {
			return false
		}
		if cur.ParentID == nil {
			return true
		}
		if seen[cur.ID] {
			return true
		}
		seen[cur.ID] = true

		parent, ok := index[*cur.ParentID]
		if !ok {
			// Dangling reference: only an existing but invisible
			// ancestor blocks a child.
			return true
		}
		cur = parent
	}
}

// ResolveMenu runs the three independent filters and nests what is left.
// The filters only ever remove entries, so their relative order does not
// change the result.
func ResolveMenu(items []MenuEntry, userRoles, userPerms []string, settings *FeatureSettings) []*MenuNode {
	visible := FilterByRole(items, userRoles)
	visible = FilterByPermission(visible, userPerms)
	visible = FilterByFeatureFlags(visible, settings)
	return BuildHierarchy(visible)
}
