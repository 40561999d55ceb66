package services

import (
	"strings"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/models"
)

// BuildJobQuery resolves profile values, user filters, and configured
// defaults into a complete query. Precedence for every overlapping
// field: non-empty filter > profile > default. Pure and deterministic;
// it never fails.
func BuildJobQuery(profile models.CandidateProfile, filters models.SearchFilters, defaults config.SearchConfig) models.JobQuery {
	query := models.JobQuery{
		RemoteOnly: filters.RemoteOnly,
	}

	query.Keyword = strings.TrimSpace(filters.Keyword)
	if query.Keyword == "" && len(profile.JobTitles) > 0 {
		query.Keyword = profile.JobTitles[0]
	}

	query.Location = strings.TrimSpace(filters.Location)
	if query.Location == "" {
		query.Location = strings.TrimSpace(profile.Location)
	}
	if query.Location == "" {
		query.Location = defaults.DefaultLocation
	}

	if len(filters.Skills) > 0 {
		query.Skills = filters.Skills
	} else {
		query.Skills = profile.Skills
	}

	if filters.ExperienceLevel != "" {
		query.ExperienceLevel = models.ExperienceLevel(filters.ExperienceLevel)
	} else {
		query.ExperienceLevel = profile.ExperienceLevel
	}
	if query.ExperienceLevel == "" {
		query.ExperienceLevel = models.ExperienceUnknown
	}

	query.Industry = strings.TrimSpace(profile.Industry)

	// Radius has no profile-derived counterpart; zero means no distance
	// constraint.
	query.RadiusKM = filters.RadiusKM

	query.Limit = filters.Limit
	if query.Limit <= 0 {
		query.Limit = defaults.DefaultPageSize
	}
	if defaults.MaxPageSize > 0 && query.Limit > defaults.MaxPageSize {
		query.Limit = defaults.MaxPageSize
	}

	return query
}
