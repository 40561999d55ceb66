package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/models"
)

// stubGemini returns canned responses in order and records the prompts
// it was called with.
type stubGemini struct {
	responses []string
	errs      []error
	prompts   []string
}

func (s *stubGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	call := len(s.prompts)
	s.prompts = append(s.prompts, prompt)

	var err error
	if call < len(s.errs) {
		err = s.errs[call]
	}
	var resp string
	if call < len(s.responses) {
		resp = s.responses[call]
	}
	return resp, err
}

func TestExtractProfile_ParsesValidResponse(t *testing.T) {
	stub := &stubGemini{responses: []string{
		`{"skills":["python"],"experience_level":"senior","job_titles":["Software Engineer"],"industry":null,"location":"Austin"}`,
	}}
	extractor := NewProfileExtractor(stub, 30000)

	profile, err := extractor.ExtractProfile(context.Background(), "Skilled Python developer, 5 years experience, Senior Software Engineer, based in Austin")
	require.NoError(t, err)

	assert.Equal(t, []string{"python"}, profile.Skills)
	assert.Equal(t, models.ExperienceSenior, profile.ExperienceLevel)
	assert.Equal(t, []string{"Software Engineer"}, profile.JobTitles)
	assert.Empty(t, profile.Industry)
	assert.Equal(t, "Austin", profile.Location)
	assert.False(t, profile.Truncated)
	assert.Len(t, stub.prompts, 1)
}

func TestExtractProfile_StripsMarkdownFences(t *testing.T) {
	stub := &stubGemini{responses: []string{
		"Here is the result:\n```json\n{\"skills\":[\"go\"],\"experience_level\":\"mid\",\"job_titles\":[],\"industry\":\"software\",\"location\":null}\n```",
	}}
	extractor := NewProfileExtractor(stub, 30000)

	profile, err := extractor.ExtractProfile(context.Background(), "resume text")
	require.NoError(t, err)

	assert.Equal(t, []string{"go"}, profile.Skills)
	assert.Equal(t, models.ExperienceMid, profile.ExperienceLevel)
	assert.Equal(t, "software", profile.Industry)
}

func TestExtractProfile_DeduplicatesCaseInsensitively(t *testing.T) {
	stub := &stubGemini{responses: []string{
		`{"skills":["Python","python","Go","  ","PYTHON","Docker"],"experience_level":"junior","job_titles":["Engineer","engineer"],"industry":null,"location":null}`,
	}}
	extractor := NewProfileExtractor(stub, 30000)

	profile, err := extractor.ExtractProfile(context.Background(), "resume text")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "Go", "Docker"}, profile.Skills)
	assert.Equal(t, []string{"Engineer"}, profile.JobTitles)
}

func TestExtractProfile_CoercesExperienceLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want models.ExperienceLevel
	}{
		{"senior", models.ExperienceSenior},
		{"Lead", models.ExperienceSenior},
		{"entry-level", models.ExperienceJunior},
		{"mid-level", models.ExperienceMid},
		{"Intermediate", models.ExperienceMid},
		{"wizard", models.ExperienceUnknown},
		{"", models.ExperienceUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			stub := &stubGemini{responses: []string{
				`{"skills":[],"experience_level":"` + tc.raw + `","job_titles":[],"industry":null,"location":null}`,
			}}
			extractor := NewProfileExtractor(stub, 30000)

			profile, err := extractor.ExtractProfile(context.Background(), "resume text")
			require.NoError(t, err)
			assert.Equal(t, tc.want, profile.ExperienceLevel)
		})
	}
}

func TestExtractProfile_RetriesOnceWithStrictPrompt(t *testing.T) {
	stub := &stubGemini{responses: []string{
		"sorry, I can't help with that",
		`{"skills":["java"],"experience_level":"mid","job_titles":[],"industry":null,"location":null}`,
	}}
	extractor := NewProfileExtractor(stub, 30000)

	profile, err := extractor.ExtractProfile(context.Background(), "resume text")
	require.NoError(t, err)

	assert.Equal(t, []string{"java"}, profile.Skills)
	require.Len(t, stub.prompts, 2)
	assert.Contains(t, stub.prompts[1], "Return ONLY the JSON object")
}

func TestExtractProfile_MalformedAfterRetry(t *testing.T) {
	stub := &stubGemini{responses: []string{
		"not json at all",
		"still not json",
	}}
	extractor := NewProfileExtractor(stub, 30000)

	_, err := extractor.ExtractProfile(context.Background(), "resume text")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMalformedModelResponse)
	// The raw response is surfaced for diagnostics.
	assert.Contains(t, err.Error(), "still not json")
	assert.Len(t, stub.prompts, 2)
}

func TestExtractProfile_TransportFailureIsNotRetried(t *testing.T) {
	stub := &stubGemini{errs: []error{ErrModelUnavailable}}
	extractor := NewProfileExtractor(stub, 30000)

	_, err := extractor.ExtractProfile(context.Background(), "resume text")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Len(t, stub.prompts, 1)
}

// Re-running extraction and query building on identical input with a
// deterministic model stub must produce identical results.
func TestPipeline_IdempotentWithDeterministicModel(t *testing.T) {
	response := `{"skills":["python","aws"],"experience_level":"senior","job_titles":["Software Engineer"],"industry":"tech","location":"Austin"}`
	resumeText := "Skilled Python developer, 5 years experience, Senior Software Engineer, based in Austin"
	defaults := config.SearchConfig{DefaultLocation: "remote", DefaultPageSize: 20, MaxPageSize: 100}
	filters := models.SearchFilters{RemoteOnly: true}

	run := func() (models.CandidateProfile, models.JobQuery) {
		stub := &stubGemini{responses: []string{response}}
		extractor := NewProfileExtractor(stub, 30000)

		profile, err := extractor.ExtractProfile(context.Background(), resumeText)
		require.NoError(t, err)

		return *profile, BuildJobQuery(*profile, filters, defaults)
	}

	firstProfile, firstQuery := run()
	secondProfile, secondQuery := run()

	assert.Equal(t, firstProfile, secondProfile)
	assert.Equal(t, firstQuery, secondQuery)
}

func TestExtractProfile_TruncatesLongInput(t *testing.T) {
	stub := &stubGemini{responses: []string{
		`{"skills":[],"experience_level":"junior","job_titles":[],"industry":null,"location":null}`,
	}}
	extractor := NewProfileExtractor(stub, 100)

	longText := strings.Repeat("a", 150)
	profile, err := extractor.ExtractProfile(context.Background(), longText)
	require.NoError(t, err)

	assert.True(t, profile.Truncated)
	assert.NotContains(t, stub.prompts[0], strings.Repeat("a", 101))
	assert.Contains(t, stub.prompts[0], strings.Repeat("a", 100))
}
