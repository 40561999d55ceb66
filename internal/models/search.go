package models

// SearchFilters are the user-adjusted overrides layered on top of the
// extracted profile. A non-empty filter value always wins over the
// profile-derived one.
type SearchFilters struct {
	Keyword         string   `json:"keyword,omitempty"`
	Location        string   `json:"location,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty" validate:"omitempty,oneof=junior mid senior"`
	RemoteOnly      bool     `json:"remote_only,omitempty"`
	RadiusKM        int      `json:"radius_km,omitempty" validate:"omitempty,min=1,max=500"`
	Limit           int      `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// JobQuery is the fully-resolved parameter set sent to the job search
// API. Every field is populated, from filters, profile, or the
// configured defaults, before the query leaves the builder.
type JobQuery struct {
	Keyword         string          `json:"keyword"`
	Skills          []string        `json:"skills"`
	Location        string          `json:"location"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Industry        string          `json:"industry,omitempty"`
	RemoteOnly      bool            `json:"remote_only"`
	RadiusKM        int             `json:"radius_km,omitempty"`
	Limit           int             `json:"limit"`
}

// JobPosting is a normalized listing ready for display. Postings
// without an application URL are dropped before they get here.
type JobPosting struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PostedAt    string `json:"posted_at,omitempty"`
}
