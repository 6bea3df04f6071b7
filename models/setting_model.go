package models

import "gorm.io/gorm"

// Setting is the per-tenant store configuration. A single row per tenant
// database; the feature booleans gate menu visibility and checkout options.
type Setting struct {
	gorm.Model
	StoreName    string `json:"store_name"`
	StoreEmail   string `json:"store_email"`
	StorePhone   string `json:"store_phone"`
	StoreAddress string `json:"store_address"`
	Currency     string `json:"currency" gorm:"default:USD"`
	LogoURL      string `json:"logo_url"`

	TrackInventory  bool `json:"track_inventory"`
	ShippingEnabled bool `json:"shipping_enabled"`
	CodEnabled      bool `json:"cod_enabled"`
	PortalEnabled   bool `json:"portal_enabled"`

	UpdatedBy int
}
