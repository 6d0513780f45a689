package prompts

import (
	"strings"
	"testing"
	"unicode/utf8"

	"smarthire/interview/internal/models"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r
}

func testContext() models.InterviewContext {
	return models.InterviewContext{
		RecruiterName: "Ava",
		Difficulty:    "Hard",
		InterviewType: "Technical",
		CandidateName: "Sam",
		ContextFile:   "Go backend role at Acme",
	}
}

func TestSystemPromptSubstitution(t *testing.T) {
	r := newRenderer(t)
	prompt := r.SystemPrompt(testContext())

	for _, want := range []string{`Your name is "Ava"`, "Candidate Name: Sam", "Go backend role at Acme"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q", want)
		}
	}
	if strings.Contains(prompt, "{{recruiterName}}") {
		t.Fatalf("recruiterName placeholder left unsubstituted")
	}
	if strings.Contains(prompt, "{{contextFile}}") {
		t.Fatalf("contextFile placeholder left unsubstituted")
	}
}

func TestSystemPromptFirstOccurrenceOnly(t *testing.T) {
	r := newRenderer(t)
	prompt := r.SystemPrompt(testContext())

	// interviewType appears several times in the template; only the first
	// occurrence is replaced, by design.
	if !strings.Contains(prompt, "{{interviewType}}") {
		t.Fatalf("expected later interviewType placeholders to stay literal")
	}
	if strings.Index(prompt, "Interview Type: Technical") < 0 {
		t.Fatalf("expected first interviewType occurrence substituted")
	}
}

func TestSystemPromptNoRecursiveSubstitution(t *testing.T) {
	r := newRenderer(t)
	ictx := testContext()
	ictx.RecruiterName = "{{candidateName}}"

	prompt := r.SystemPrompt(ictx)
	if !strings.Contains(prompt, `Your name is "{{candidateName}}"`) {
		t.Fatalf("placeholder-like token in a value must not be expanded")
	}
}

func TestExclusionClause(t *testing.T) {
	r := newRenderer(t)

	clause := r.ExclusionClause([]string{"Q1", "Q2"})
	if !strings.Contains(clause, "Do NOT ask any of the following questions again:") {
		t.Fatalf("missing exclusion header: %q", clause)
	}
	if !strings.Contains(clause, "- Q1") || !strings.Contains(clause, "- Q2") {
		t.Fatalf("missing bullet lines: %q", clause)
	}
}

func TestExclusionClauseEmpty(t *testing.T) {
	r := newRenderer(t)

	if got := r.ExclusionClause(nil); got != "" {
		t.Fatalf("expected empty clause for no past questions, got %q", got)
	}
	if got := r.ExclusionClause([]string{}); got != "" {
		t.Fatalf("expected empty clause for empty slice, got %q", got)
	}
}

func TestOpeningInstruction(t *testing.T) {
	r := newRenderer(t)

	got := r.OpeningInstruction(testContext())
	if !strings.Contains(got, `"Technical" type`) {
		t.Fatalf("expected interview type in opening instruction, got %q", got)
	}
}

func TestAssessmentPromptTruncatesContext(t *testing.T) {
	r := newRenderer(t)
	ictx := testContext()
	ictx.ContextFile = strings.Repeat("x", 5000)

	prompt := r.AssessmentPrompt(ictx, "Q", "A")
	if strings.Contains(prompt, strings.Repeat("x", ContextPrefixLength+1)) {
		t.Fatalf("context was not truncated to %d characters", ContextPrefixLength)
	}
	if !strings.Contains(prompt, strings.Repeat("x", ContextPrefixLength)) {
		t.Fatalf("expected the %d-character prefix to be present", ContextPrefixLength)
	}
	if !strings.Contains(prompt, `Question Asked: "Q"`) {
		t.Fatalf("missing question in assessment prompt")
	}
	if !strings.Contains(prompt, `Candidate's Response: "A"`) {
		t.Fatalf("missing answer in assessment prompt")
	}
}

func TestAssessmentPromptTruncationKeepsRunesIntact(t *testing.T) {
	r := newRenderer(t)
	ictx := testContext()
	// a multibyte rune straddling the cut point must survive whole
	ictx.ContextFile = strings.Repeat("a", ContextPrefixLength-1) + "é" + strings.Repeat("b", 50)

	prompt := r.AssessmentPrompt(ictx, "Q", "A")
	if !utf8.ValidString(prompt) {
		t.Fatalf("assessment prompt contains invalid UTF-8 after truncation")
	}
	if !strings.Contains(prompt, strings.Repeat("a", ContextPrefixLength-1)+"é") {
		t.Fatalf("expected the final rune of the prefix to be kept whole")
	}
	if strings.Contains(prompt, "éb") {
		t.Fatalf("expected truncation at %d runes", ContextPrefixLength)
	}
}

func TestAssessmentPromptMultibyteContextLength(t *testing.T) {
	r := newRenderer(t)
	ictx := testContext()
	ictx.ContextFile = strings.Repeat("面", ContextPrefixLength+100)

	prompt := r.AssessmentPrompt(ictx, "Q", "A")
	if !utf8.ValidString(prompt) {
		t.Fatalf("assessment prompt contains invalid UTF-8 after truncation")
	}
	if !strings.Contains(prompt, strings.Repeat("面", ContextPrefixLength)) {
		t.Fatalf("expected a %d-rune prefix", ContextPrefixLength)
	}
	if strings.Contains(prompt, strings.Repeat("面", ContextPrefixLength+1)) {
		t.Fatalf("prefix longer than %d runes", ContextPrefixLength)
	}
}

func TestRendererDeterministic(t *testing.T) {
	r := newRenderer(t)
	ictx := testContext()

	if r.SystemPrompt(ictx) != r.SystemPrompt(ictx) {
		t.Fatalf("SystemPrompt must be deterministic for identical input")
	}
}
