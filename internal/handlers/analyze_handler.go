package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

type AnalyzeHandler struct {
	pdfParser        services.PDFParserService
	profileExtractor services.ProfileExtractor
	maxFileSize      int64
}

func NewAnalyzeHandler(
	pdfParser services.PDFParserService,
	profileExtractor services.ProfileExtractor,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		pdfParser:        pdfParser,
		profileExtractor: profileExtractor,
		maxFileSize:      maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. The resume is read into memory,
// run through text extraction and the model, and discarded. Nothing is
// written to disk or stored between requests.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required (multipart field 'resume')",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	text, err := h.pdfParser.ExtractText(data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoText):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Could not read this PDF: it has no text layer. Please upload a text-searchable PDF.",
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Could not read this PDF. Please upload a valid PDF file.",
			})
		}
	}

	profile, err := h.profileExtractor.ExtractProfile(c.Context(), services.CleanText(text))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMalformedModelResponse):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Could not extract resume details. Please try again.",
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Resume analysis is temporarily unavailable. Please try again later.",
			})
		}
	}

	return c.JSON(models.AnalyzeResponse{
		ID:      uuid.New().String(),
		Profile: profile,
	})
}
