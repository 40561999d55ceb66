package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

type SearchHandler struct {
	searchClient services.JobSearchClient
	defaults     config.SearchConfig
	validate     *validator.Validate
}

func NewSearchHandler(searchClient services.JobSearchClient, defaults config.SearchConfig) *SearchHandler {
	return &SearchHandler{
		searchClient: searchClient,
		defaults:     defaults,
		validate:     validator.New(),
	}
}

// HandleSearch handles POST /search. The client round-trips the profile
// from the analyze step together with any filter adjustments; no state
// is kept server-side between the two calls.
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req models.SearchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(req.Filters); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid search filters: " + err.Error(),
		})
	}

	query := services.BuildJobQuery(req.Profile, req.Filters, h.defaults)

	postings, err := h.searchClient.Search(c.Context(), query)
	if err != nil {
		if errors.Is(err, services.ErrSearchUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Job search is temporarily unavailable. Please try again later.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Job search failed",
		})
	}

	// An empty result list is a valid response; the UI shows a
	// "no matches" message.
	return c.JSON(models.SearchResponse{
		Query: query,
		Total: len(postings),
		Jobs:  postings,
	})
}
