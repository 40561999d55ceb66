package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildProfileExtractionPrompt creates the prompt asking the model for
// the five profile fields as a JSON object.
func (pb *PromptBuilder) BuildProfileExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert technical recruiter analyzing a candidate's resume.

RESUME TEXT:
%s

Extract the following information from the resume:
- Skills (technical and soft skills)
- Experience level (junior, mid, or senior)
- Job titles (current and past positions)
- Industry
- Preferred job location (only if mentioned in the resume)

Return your response in the following JSON format. If a field is not
found in the resume, use an empty list, empty string, or null as appropriate:
{
  "skills": [],
  "experience_level": "",
  "job_titles": [],
  "industry": null,
  "location": null
}

Do not invent information that is not present in the resume.`, resumeText)
}

// BuildStrictRetryPrompt is used after an unparseable response: same
// task, with the output constraint made explicit.
func (pb *PromptBuilder) BuildStrictRetryPrompt(resumeText string) string {
	return pb.BuildProfileExtractionPrompt(resumeText) + `

IMPORTANT: Return ONLY the JSON object. No markdown code blocks, no
explanations, no text before or after the JSON.`
}
