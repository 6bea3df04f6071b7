package services

import "storefront-app/models"

// WouldCreateCycle reports whether setting newParentID on the page with
// the given id would close a loop in the page hierarchy. pages is the
// full list for the tenant; the walk follows ParentID upward from the
// candidate parent and keeps a seen set so existing bad data cannot make
// it spin.
func WouldCreateCycle(pages []models.Page, id uint, newParentID *uint) bool {
	if newParentID == nil {
		return false
	}
	if *newParentID == id {
		return true
	}

	index := make(map[uint]models.Page, len(pages))
	for _, p := range pages {
		index[p.ID] = p
	}

	seen := map[uint]bool{id: true}
	cur := *newParentID
	for {
		if seen[cur] {
			return true
		}
		seen[cur] = true

		p, ok := index[cur]
		if !ok || p.ParentID == nil {
			return false
		}
		cur = *p.ParentID
	}
}

// PageNode is a page with its nested children, for the admin tree view.
type PageNode struct {
	ID       uint        `json:"id"`
	Title    string      `json:"title"`
	Slug     string      `json:"slug"`
	Order    int         `json:"page_order"`
	Children []*PageNode `json:"children"`
}

// BuildPageTree nests the flat page list the same way the menu hierarchy
// is built: dangling parents degrade to roots, siblings sort by order
// with input order breaking ties.
func BuildPageTree(pages []models.Page) []*PageNode {
	entries := make([]MenuEntry, 0, len(pages))
	for _, p := range pages {
		entries = append(entries, MenuEntry{
			ID:       p.ID,
			Name:     p.Title,
			Path:     p.Slug,
			Order:    p.PageOrder,
			ParentID: p.ParentID,
		})
	}

	return pageNodes(BuildHierarchy(entries))
}

func pageNodes(nodes []*MenuNode) []*PageNode {
	out := make([]*PageNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &PageNode{
			ID:       n.ID,
			Title:    n.Name,
			Slug:     n.Path,
			Order:    n.Order,
			Children: pageNodes(n.Children),
		})
	}
	return out
}
