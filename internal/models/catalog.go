package models

// CatalogItem represents one entry of a browsing taxonomy (a category, an
// ingredient or a flavor). The Name is the canonical label stored in a
// user's favorites list; the three taxonomies share one label namespace.
type CatalogItem struct {
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description"`
}
