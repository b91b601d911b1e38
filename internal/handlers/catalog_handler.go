package handlers

import (
	"errors"
	"fmt"
	"log"

	"coffeinimals/internal/apperr"
	"coffeinimals/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for the browsing taxonomies.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	catalogRoutes := router.Group("/catalog")
	catalogRoutes.Get("/", h.HandleListTaxonomies)
	catalogRoutes.Get("/:taxonomy", h.HandleListItems)
}

// HandleListTaxonomies returns the known taxonomy names.
func (h *CatalogHandler) HandleListTaxonomies(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"taxonomies": h.service.Taxonomies(),
	})
}

// HandleListItems returns the items of one taxonomy, optionally filtered
// by the q query parameter (case-insensitive substring on names).
func (h *CatalogHandler) HandleListItems(c *fiber.Ctx) error {
	taxonomy := c.Params("taxonomy")
	items, err := h.service.Search(taxonomy, c.Query("q"))
	if err != nil {
		log.Printf("Error listing taxonomy %s: %v", taxonomy, err)
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Taxonomy %s not found", taxonomy),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve catalog",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}
