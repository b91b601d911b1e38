package repositories

import (
	"coffeinimals/internal/apperr"
	"coffeinimals/internal/catalog"
	"coffeinimals/internal/models"
)

// InMemoryCatalogRepository serves the static taxonomy datasets.
// The data never changes at runtime, so no locking is needed.
type InMemoryCatalogRepository struct {
	taxonomies map[string][]models.CatalogItem
	names      []string
}

// NewInMemoryCatalogRepository creates a catalog repository seeded with the
// three built-in taxonomies.
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{
		taxonomies: map[string][]models.CatalogItem{
			catalog.TaxonomyCategories:  catalog.Categories(),
			catalog.TaxonomyIngredients: catalog.Ingredients(),
			catalog.TaxonomyFlavors:     catalog.Flavors(),
		},
		names: []string{
			catalog.TaxonomyCategories,
			catalog.TaxonomyIngredients,
			catalog.TaxonomyFlavors,
		},
	}
}

// Taxonomies returns the known taxonomy names.
func (r *InMemoryCatalogRepository) Taxonomies() []string {
	return append([]string(nil), r.names...)
}

// List returns all items of one taxonomy.
func (r *InMemoryCatalogRepository) List(taxonomy string) ([]models.CatalogItem, error) {
	items, ok := r.taxonomies[taxonomy]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return append([]models.CatalogItem(nil), items...), nil
}
