package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/models"
)

// JobSearchClient issues a resolved query against the external job
// search API and returns normalized postings in the API's own order.
type JobSearchClient interface {
	Search(ctx context.Context, query models.JobQuery) ([]models.JobPosting, error)
}

type apiJobsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewAPIJobsClient(cfg config.APIJobsConfig) JobSearchClient {
	return &apiJobsClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// searchPayload is the request body for POST /v1/job/search.
type searchPayload struct {
	Q               string `json:"q"`
	City            string `json:"city,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	Size            int    `json:"size,omitempty"`
}

// searchEnvelope mirrors the apijobs.dev response shape.
type searchEnvelope struct {
	OK   bool         `json:"ok"`
	Hits []apiJobsHit `json:"hits"`
}

type apiJobsHit struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	WebsiteName  string `json:"websiteName"`
	LocationName string `json:"locationName"`
	CreatedAt    string `json:"created_at"`
}

// Search implements JobSearchClient.
// The API has no radius parameter, so JobQuery.RadiusKM is not mapped.
func (c *apiJobsClient) Search(ctx context.Context, query models.JobQuery) ([]models.JobPosting, error) {
	payload := searchPayload{
		Q:    buildSearchTerms(query),
		Size: query.Limit,
	}
	if !query.RemoteOnly && query.Location != "" && !strings.EqualFold(query.Location, "remote") {
		payload.City = query.Location
	}
	if query.ExperienceLevel != models.ExperienceUnknown {
		payload.ExperienceLevel = string(query.ExperienceLevel)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/job/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSearchUnavailable, resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}

	var envelope searchEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("%w: invalid response body: %v", ErrSearchUnavailable, err)
	}

	// Empty hits is a valid result, not an error.
	postings := make([]models.JobPosting, 0, len(envelope.Hits))
	for _, hit := range envelope.Hits {
		if !isUsableURL(hit.URL) {
			continue
		}
		postings = append(postings, models.JobPosting{
			ID:          hit.ID,
			Title:       hit.Title,
			Company:     hit.WebsiteName,
			Location:    hit.LocationName,
			Description: snippet(hit.Description, 500),
			URL:         hit.URL,
			PostedAt:    hit.CreatedAt,
		})
	}

	return postings, nil
}

// buildSearchTerms joins keyword and skills into the comma-separated
// query string the API expects. The API has no dedicated remote flag,
// so a remote-only search adds "remote" as a search term on top of
// omitting the city constraint.
func buildSearchTerms(query models.JobQuery) string {
	terms := make([]string, 0, len(query.Skills)+2)
	if query.Keyword != "" {
		terms = append(terms, query.Keyword)
	}
	for _, skill := range query.Skills {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			terms = append(terms, skill)
		}
	}
	if query.RemoteOnly {
		terms = append(terms, "remote")
	}
	return strings.Join(terms, ",")
}

// isUsableURL accepts only absolute http/https application links.
// Postings without one are dropped before display.
func isUsableURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// snippet truncates on a rune boundary so multibyte descriptions are
// never cut mid-character.
func snippet(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxLen {
		return text
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "…"
}
