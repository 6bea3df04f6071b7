package services

import "storefront-app/models"

// MenuEntriesFromModels flattens menu rows (with their Roles and
// Permissions associations preloaded) into resolver snapshots.
func MenuEntriesFromModels(menus []models.Menu) []MenuEntry {
	entries := make([]MenuEntry, 0, len(menus))
	for _, m := range menus {
		entry := MenuEntry{
			ID:          m.ID,
			Name:        m.Name,
			Path:        m.Path,
			Icon:        m.Icon,
			Order:       m.MenuOrder,
			ParentID:    m.ParentID,
			FeatureFlag: m.FeatureFlag,
		}
		for _, r := range m.Roles {
			entry.RequiredRoles = append(entry.RequiredRoles, r.Name)
		}
		for _, p := range m.Permissions {
			entry.RequiredPermissions = append(entry.RequiredPermissions, p.Name)
		}
		entries = append(entries, entry)
	}
	return entries
}

// FeatureSettingsFromModel maps the store settings row for the flag
// filter. Nil in, nil out: the filter fails closed without settings.
func FeatureSettingsFromModel(s *models.Setting) *FeatureSettings {
	if s == nil {
		return nil
	}
	return &FeatureSettings{
		TrackInventory:  s.TrackInventory,
		ShippingEnabled: s.ShippingEnabled,
		CodEnabled:      s.CodEnabled,
		PortalEnabled:   s.PortalEnabled,
	}
}

// UserAccess collects the role names and the effective permission names of
// a user (direct permissions plus the ones granted through roles). The
// user must be loaded with Roles.Permissions and Permissions preloaded.
func UserAccess(user *models.User) (roles []string, perms []string) {
	seen := map[string]bool{}
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
		for _, p := range r.Permissions {
			if !seen[p.Name] {
				seen[p.Name] = true
				perms = append(perms, p.Name)
			}
		}
	}
	for _, p := range user.Permissions {
		if !seen[p.Name] {
			seen[p.Name] = true
			perms = append(perms, p.Name)
		}
	}
	return roles, perms
}
