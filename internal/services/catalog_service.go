package services

import (
	"strings"

	"coffeinimals/internal/models"
	"coffeinimals/internal/repositories"
)

// CatalogService handles read access to the browsing taxonomies.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// Taxonomies returns the known taxonomy names.
func (s *CatalogService) Taxonomies() []string {
	return s.repo.Taxonomies()
}

// List returns all items of one taxonomy.
func (s *CatalogService) List(taxonomy string) ([]models.CatalogItem, error) {
	return s.repo.List(taxonomy)
}

// Search returns the items of one taxonomy whose name contains the query,
// case-insensitively. An empty query returns the full taxonomy.
func (s *CatalogService) Search(taxonomy, query string) ([]models.CatalogItem, error) {
	items, err := s.repo.List(taxonomy)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return items, nil
	}

	q := strings.ToLower(query)
	filtered := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}
