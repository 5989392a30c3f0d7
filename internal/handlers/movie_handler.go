package handlers

import (
	"errors"
	"log"

	"filmshelf/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MovieHandler handles HTTP requests for a user's movie collection.
type MovieHandler struct {
	service  *services.CollectionService
	validate *validator.Validate
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service *services.CollectionService) *MovieHandler {
	return &MovieHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the collection routes. All of them sit behind
// the auth middleware.
func (h *MovieHandler) RegisterRoutes(router fiber.Router) {
	movieRoutes := router.Group("/movies")
	movieRoutes.Get("/", h.HandleListMovies)
	movieRoutes.Patch("/:id", h.HandleRateMovie)
	movieRoutes.Delete("/:id", h.HandleDeleteMovie)
}

// currentUserID returns the user ID resolved by the auth middleware.
func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

// HandleListMovies returns the user's collection with freshly recomputed
// rankings.
func (h *MovieHandler) HandleListMovies(c *fiber.Ctx) error {
	userID := currentUserID(c)
	movies, err := h.service.ListOwned(userID)
	if err != nil {
		log.Printf("Error listing movies for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve movies",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"movies": movies,
	})
}

// RateRequest represents the request body for rating a movie.
type RateRequest struct {
	Rating float64 `json:"rating" validate:"required,gte=0,lte=10"`
	Review string  `json:"review" validate:"required,max=500"`
}

// HandleRateMovie overwrites the rating and review of one owned movie.
func (h *MovieHandler) HandleRateMovie(c *fiber.Ctx) error {
	movieID := c.Params("id")

	var req RateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing rate request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	movie, err := h.service.Rate(currentUserID(c), movieID, req.Rating, req.Review)
	if err != nil {
		return movieError(c, movieID, err)
	}
	return c.JSON(fiber.Map{
		"message": "Movie updated",
		"movie":   movie,
	})
}

// HandleDeleteMovie removes one owned movie from the collection.
func (h *MovieHandler) HandleDeleteMovie(c *fiber.Ctx) error {
	movieID := c.Params("id")

	if err := h.service.Remove(currentUserID(c), movieID); err != nil {
		return movieError(c, movieID, err)
	}
	return c.JSON(fiber.Map{
		"message": "Movie deleted",
	})
}

// movieError maps collection failures onto HTTP statuses: a missing ID is
// 404, an ID owned by someone else is 403.
func movieError(c *fiber.Ctx, movieID string, err error) error {
	log.Printf("Error operating on movie %s: %v", movieID, err)
	switch {
	case errors.Is(err, services.ErrMovieNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Movie not found",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Movie belongs to another user",
			"error":   err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not complete operation",
			"error":   err.Error(),
		})
	}
}
