package handlers

import (
	"errors"
	"log"

	"filmshelf/internal/repositories"
	"filmshelf/internal/services"
	"filmshelf/internal/tmdb"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ImportHandler handles HTTP requests for the catalog import workflow.
type ImportHandler struct {
	service  *services.ImportService
	validate *validator.Validate
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the import routes behind the auth middleware.
func (h *ImportHandler) RegisterRoutes(router fiber.Router) {
	movieRoutes := router.Group("/movies")
	movieRoutes.Get("/search", h.HandleSearch)
	movieRoutes.Post("/import", h.HandleImport)
}

// HandleSearch returns catalog candidates for a title query.
func (h *ImportHandler) HandleSearch(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "query parameter is required",
		})
	}

	candidates, err := h.service.Search(c.Context(), query)
	if err != nil {
		log.Printf("Error searching catalog for %q: %v", query, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Movie catalog is unavailable, try again",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"candidates": candidates,
	})
}

// ImportRequest represents the request body for importing a chosen candidate.
type ImportRequest struct {
	TmdbID int64 `json:"tmdb_id" validate:"required,gt=0"`
}

// HandleImport fetches details for the chosen candidate and creates the
// movie in the caller's collection. The created movie comes back in the
// response so the client can go straight to rating it.
func (h *ImportHandler) HandleImport(c *fiber.Ctx) error {
	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing import request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	movie, err := h.service.Import(c.Context(), currentUserID(c), req.TmdbID)
	if err != nil {
		log.Printf("Error importing movie %d: %v", req.TmdbID, err)
		switch {
		case errors.Is(err, repositories.ErrDuplicateTitle):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "This movie is already in the collection",
				"error":   err.Error(),
			})
		case errors.Is(err, tmdb.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "The catalog does not recognize that movie",
				"error":   err.Error(),
			})
		case errors.Is(err, tmdb.ErrUnavailable):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Movie catalog is unavailable, try again",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not import movie",
				"error":   err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Movie imported",
		"movie":   movie,
	})
}
