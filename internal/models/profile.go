package models

// ExperienceLevel is the fixed enumeration the extractor is allowed to
// return. Anything else is coerced to ExperienceUnknown.
type ExperienceLevel string

const (
	ExperienceJunior  ExperienceLevel = "junior"
	ExperienceMid     ExperienceLevel = "mid"
	ExperienceSenior  ExperienceLevel = "senior"
	ExperienceUnknown ExperienceLevel = "unknown"
)

// CandidateProfile is the structured summary extracted from a single
// resume. It lives only for the duration of the upload/search cycle and
// is never persisted or merged across sessions.
type CandidateProfile struct {
	Skills          []string        `json:"skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	JobTitles       []string        `json:"job_titles"`
	Industry        string          `json:"industry,omitempty"`
	Location        string          `json:"location,omitempty"`

	// Truncated is set when the resume text exceeded the model input
	// budget and only a prefix was sent for extraction.
	Truncated bool `json:"truncated,omitempty"`
}
