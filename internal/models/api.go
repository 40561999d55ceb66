package models

type AnalyzeResponse struct {
	ID      string            `json:"id"`
	Profile *CandidateProfile `json:"profile"`
}

type SearchRequest struct {
	Profile CandidateProfile `json:"profile"`
	Filters SearchFilters    `json:"filters"`
}

type SearchResponse struct {
	Query JobQuery     `json:"query"`
	Total int          `json:"total"`
	Jobs  []JobPosting `json:"jobs"`
}
