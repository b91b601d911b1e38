package repositories

import "coffeinimals/internal/models"

// CatalogRepository defines read access to the browsing taxonomies.
type CatalogRepository interface {
	Taxonomies() []string
	List(taxonomy string) ([]models.CatalogItem, error)
}
