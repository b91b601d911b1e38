package services_test

import (
	"testing"

	"coffeinimals/internal/apperr"
	"coffeinimals/internal/catalog"
	"coffeinimals/internal/repositories"
	"coffeinimals/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_List(t *testing.T) {
	svc := services.NewCatalogService(repositories.NewInMemoryCatalogRepository())

	assert.ElementsMatch(t, []string{"categories", "ingredients", "flavors"}, svc.Taxonomies())

	flavors, err := svc.List(catalog.TaxonomyFlavors)
	require.NoError(t, err)
	assert.NotEmpty(t, flavors)

	categories, err := svc.List(catalog.TaxonomyCategories)
	require.NoError(t, err)
	assert.Len(t, categories, 8)

	_, err = svc.List("roasts")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCatalogService_Search(t *testing.T) {
	svc := services.NewCatalogService(repositories.NewInMemoryCatalogRepository())

	// Case-insensitive substring match on names
	results, err := svc.Search(catalog.TaxonomyFlavors, "van")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Vanilla", results[0].Name)

	results, err = svc.Search(catalog.TaxonomyIngredients, "MILK")
	require.NoError(t, err)
	names := make([]string, 0, len(results))
	for _, item := range results {
		names = append(names, item.Name)
	}
	assert.Contains(t, names, "Milk")
	assert.Contains(t, names, "Oat Milk")

	// Empty query returns the full taxonomy
	all, err := svc.Search(catalog.TaxonomyFlavors, "")
	require.NoError(t, err)
	full, _ := svc.List(catalog.TaxonomyFlavors)
	assert.Equal(t, len(full), len(all))

	// No match yields an empty, non-nil result
	none, err := svc.Search(catalog.TaxonomyFlavors, "zzz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
