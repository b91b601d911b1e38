package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/url"

	"coffeinimals/internal/apperr"
	"coffeinimals/internal/models"
	"coffeinimals/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles HTTP requests for the current user's profile and
// favorites list. All routes require a live session.
type ProfileHandler struct {
	authService    *services.AuthService
	profileService *services.ProfileService
	validate       *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(authService *services.AuthService, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		authService:    authService,
		profileService: profileService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the profile routes behind the session guard.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	meRoutes := router.Group("/me", guard)
	meRoutes.Get("/", h.HandleGetCurrentUser)
	meRoutes.Put("/profile", h.HandleUpdateProfile)
	meRoutes.Put("/favorites", h.HandleUpdateFavorites)
	meRoutes.Post("/favorites", h.HandleAddFavorite)
	meRoutes.Delete("/favorites/:label", h.HandleRemoveFavorite)
}

// HandleGetCurrentUser returns the live current-user record.
func (h *ProfileHandler) HandleGetCurrentUser(c *fiber.Ctx) error {
	accountID, _ := c.Locals("user_id").(string)
	user, err := h.authService.CurrentUser(accountID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "No active session",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleUpdateProfile merges name/email into the profile.
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var profile models.Profile
	if err := c.BodyParser(&profile); err != nil {
		log.Printf("Error parsing profile update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(profile); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	accountID, _ := c.Locals("user_id").(string)
	user, err := h.profileService.UpdateProfile(c.Context(), accountID, profile)
	if err != nil {
		return h.mutationError(c, accountID, "update profile", err)
	}

	return c.JSON(fiber.Map{
		"message": "Your changes were saved!",
		"user":    user,
	})
}

// UpdateFavoritesRequest represents a full-list favorites replace.
type UpdateFavoritesRequest struct {
	Favorites []string `json:"favorites" validate:"required"`
}

// HandleUpdateFavorites replaces the favorites list wholesale.
func (h *ProfileHandler) HandleUpdateFavorites(c *fiber.Ctx) error {
	var req UpdateFavoritesRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing favorites update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	accountID, _ := c.Locals("user_id").(string)
	user, err := h.profileService.UpdateFavorites(c.Context(), accountID, req.Favorites)
	if err != nil {
		return h.mutationError(c, accountID, "update favorites", err)
	}

	return c.JSON(user)
}

// AddFavoriteRequest carries the label to add.
type AddFavoriteRequest struct {
	Label string `json:"label" validate:"required"`
}

// HandleAddFavorite adds one label to the front of the favorites list.
// Re-adding an existing label succeeds without changing the list.
func (h *ProfileHandler) HandleAddFavorite(c *fiber.Ctx) error {
	var req AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add favorite body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Label is required.",
		})
	}

	accountID, _ := c.Locals("user_id").(string)
	user, err := h.profileService.AddFavorite(c.Context(), accountID, req.Label)
	if err != nil {
		return h.mutationError(c, accountID, "add favorite", err)
	}
	if user == nil {
		// Session disappeared between the middleware check and the call.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "No active session",
		})
	}

	return c.JSON(user)
}

// HandleRemoveFavorite deletes one label from the favorites list.
func (h *ProfileHandler) HandleRemoveFavorite(c *fiber.Ctx) error {
	// Labels may contain spaces and emoji, so the path segment arrives
	// percent-encoded.
	label, err := url.PathUnescape(c.Params("label"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid label",
			"error":   err.Error(),
		})
	}

	accountID, _ := c.Locals("user_id").(string)
	user, err := h.profileService.RemoveFavorite(c.Context(), accountID, label)
	if err != nil {
		return h.mutationError(c, accountID, "remove favorite", err)
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "No active session",
		})
	}

	return c.JSON(user)
}

// mutationError maps service errors to HTTP responses.
func (h *ProfileHandler) mutationError(c *fiber.Ctx, accountID, op string, err error) error {
	log.Printf("Error during %s for %s: %v", op, accountID, err)
	if errors.Is(err, apperr.ErrNotAuthenticated) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "No active session",
			"error":   err.Error(),
		})
	}
	var persErr *apperr.PersistenceError
	if errors.As(err, &persErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Could not save changes",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not " + op,
		"error":   err.Error(),
	})
}
