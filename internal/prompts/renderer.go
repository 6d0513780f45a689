package prompts

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"smarthire/interview/internal/models"
)

// embeds all .yaml files in the templates folder into the binary at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// ContextPrefixLength bounds how much of the job description the assessment
// prompt carries, counted in runes so truncation never splits a character.
const ContextPrefixLength = 1000

type interviewTemplate struct {
	SystemPrompt        string `yaml:"system_prompt"`
	ExclusionHeader     string `yaml:"exclusion_header"`
	OpeningInstruction  string `yaml:"opening_instruction"`
	FollowupInstruction string `yaml:"followup_instruction"`
}

type assessmentTemplate struct {
	AssessmentPrompt string `yaml:"assessment_prompt"`
}

// Renderer fills the fixed instruction templates with session parameters.
// Substitution is literal text replacement, first occurrence only per
// placeholder, so placeholder-like tokens inside the job context are never
// recursively expanded. Stateless and deterministic.
type Renderer struct {
	interview  interviewTemplate
	assessment assessmentTemplate
}

// NewRenderer loads the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{}

	if err := loadTemplate("templates/interview.yaml", &r.interview); err != nil {
		return nil, err
	}
	if err := loadTemplate("templates/assessment.yaml", &r.assessment); err != nil {
		return nil, err
	}

	if r.interview.SystemPrompt == "" || r.assessment.AssessmentPrompt == "" {
		return nil, fmt.Errorf("prompt templates incomplete")
	}

	return r, nil
}

func loadTemplate(path string, out interface{}) error {
	data, err := templateFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	return nil
}

// SystemPrompt renders the recruiter persona instruction for one session.
func (r *Renderer) SystemPrompt(ictx models.InterviewContext) string {
	return substitute(r.interview.SystemPrompt, map[string]string{
		"recruiterName": ictx.RecruiterName,
		"difficulty":    ictx.Difficulty,
		"interviewType": ictx.InterviewType,
		"candidateName": ictx.CandidateName,
		"contextFile":   ictx.ContextFile,
	})
}

// ExclusionClause renders the denylist of previously asked questions, or an
// empty string when there is nothing to exclude.
func (r *Renderer) ExclusionClause(pastQuestions []string) string {
	if len(pastQuestions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(r.interview.ExclusionHeader)
	for _, q := range pastQuestions {
		b.WriteString("\n- ")
		b.WriteString(q)
	}
	return b.String()
}

// OpeningInstruction renders the greet-and-ask-first-question kicker.
func (r *Renderer) OpeningInstruction(ictx models.InterviewContext) string {
	return "\n\n" + substitute(r.interview.OpeningInstruction, map[string]string{
		"interviewType": ictx.InterviewType,
	})
}

// FollowupInstruction renders the analyze-or-pivot kicker for later turns.
func (r *Renderer) FollowupInstruction() string {
	return "\n\n" + r.interview.FollowupInstruction
}

// AssessmentPrompt renders the single-shot scoring request for one
// question/answer pair.
func (r *Renderer) AssessmentPrompt(ictx models.InterviewContext, question, answer string) string {
	prefix := ictx.ContextFile
	if runes := []rune(prefix); len(runes) > ContextPrefixLength {
		prefix = string(runes[:ContextPrefixLength])
	}
	return substitute(r.assessment.AssessmentPrompt, map[string]string{
		"recruiterName": ictx.RecruiterName,
		"difficulty":    ictx.Difficulty,
		"interviewType": ictx.InterviewType,
		"contextPrefix": prefix,
		"question":      question,
		"answer":        answer,
	})
}

// substitute replaces the first occurrence of each {{name}} placeholder.
func substitute(template string, values map[string]string) string {
	result := template
	for name, value := range values {
		result = strings.Replace(result, "{{"+name+"}}", value, 1)
	}
	return result
}
