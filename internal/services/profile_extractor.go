package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"alfredoptarigan/resume-matcher/internal/models"
)

type ProfileExtractor interface {
	ExtractProfile(ctx context.Context, resumeText string) (*models.CandidateProfile, error)
}

type profileExtractor struct {
	geminiService  GeminiService
	promptBuilder  *PromptBuilder
	inputCharLimit int
}

func NewProfileExtractor(geminiService GeminiService, inputCharLimit int) ProfileExtractor {
	return &profileExtractor{
		geminiService:  geminiService,
		promptBuilder:  NewPromptBuilder(),
		inputCharLimit: inputCharLimit,
	}
}

// rawProfile is the untrusted payload shape the model is asked for.
// Fields are validated and coerced before they become a CandidateProfile.
type rawProfile struct {
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
	JobTitles       []string `json:"job_titles"`
	Industry        *string  `json:"industry"`
	Location        *string  `json:"location"`
}

// ExtractProfile sends the resume text to the model and parses the
// response into a validated profile. A parse failure is retried exactly
// once with the strict prompt; transport failures are never retried here.
func (e *profileExtractor) ExtractProfile(ctx context.Context, resumeText string) (*models.CandidateProfile, error) {
	truncated := false
	if len(resumeText) > e.inputCharLimit {
		resumeText = resumeText[:e.inputCharLimit]
		truncated = true
		log.Printf("⚠️  Resume text truncated to %d characters before extraction\n", e.inputCharLimit)
	}

	prompt := e.promptBuilder.BuildProfileExtractionPrompt(resumeText)

	response, err := e.geminiService.GenerateText(ctx, prompt, 0.2)
	if err != nil && !errors.Is(err, ErrMalformedModelResponse) {
		return nil, err
	}

	raw, parseErr := parseProfileResponse(response)
	if err != nil || parseErr != nil {
		log.Println("⚠️  Profile response unparseable, retrying with strict prompt")

		strictPrompt := e.promptBuilder.BuildStrictRetryPrompt(resumeText)
		response, err = e.geminiService.GenerateText(ctx, strictPrompt, 0.2)
		if err != nil && !errors.Is(err, ErrMalformedModelResponse) {
			return nil, err
		}

		raw, parseErr = parseProfileResponse(response)
		if parseErr != nil {
			// Surface the raw response for diagnostics.
			return nil, fmt.Errorf("%w: %v\nResponse: %s", ErrMalformedModelResponse, parseErr, response)
		}
	}

	profile := &models.CandidateProfile{
		Skills:          dedupeStrings(raw.Skills),
		ExperienceLevel: coerceExperienceLevel(raw.ExperienceLevel),
		JobTitles:       dedupeStrings(raw.JobTitles),
		Truncated:       truncated,
	}
	if raw.Industry != nil {
		profile.Industry = strings.TrimSpace(*raw.Industry)
	}
	if raw.Location != nil {
		profile.Location = strings.TrimSpace(*raw.Location)
	}

	return profile, nil
}

func parseProfileResponse(response string) (*rawProfile, error) {
	jsonStr := extractJSON(response)

	var raw rawProfile
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return &raw, nil
}

// extractJSON pulls the outermost JSON object out of text the model may
// have wrapped in markdown or prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

// dedupeStrings drops blanks and case-insensitive duplicates, keeping
// first-seen order.
func dedupeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, v)
	}

	return result
}

// coerceExperienceLevel normalizes common synonyms and maps anything
// still outside the enumeration to unknown rather than rejecting it.
func coerceExperienceLevel(value string) models.ExperienceLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "junior", "entry", "entry-level", "entry level":
		return models.ExperienceJunior
	case "mid", "mid-level", "mid level", "intermediate":
		return models.ExperienceMid
	case "senior", "lead", "principal", "staff":
		return models.ExperienceSenior
	default:
		return models.ExperienceUnknown
	}
}
