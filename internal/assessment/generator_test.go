package assessment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smarthire/interview/internal/models"
	"smarthire/interview/internal/prompts"
)

type stubProvider struct {
	reply string
	err   error
	calls int
	last  string
}

func (p *stubProvider) GenerateTurn(_ context.Context, instruction string, _ models.Transcript) (string, error) {
	p.calls++
	p.last = instruction
	return p.reply, p.err
}

func (p *stubProvider) GetProviderName() string { return "stub" }

func newGenerator(t *testing.T, provider *stubProvider) *Generator {
	t.Helper()
	renderer, err := prompts.NewRenderer()
	if err != nil {
		t.Fatalf("failed to load renderer: %v", err)
	}
	return NewGenerator(provider, renderer)
}

func testContext() models.InterviewContext {
	return models.InterviewContext{
		RecruiterName: "Ava",
		Difficulty:    "Medium",
		InterviewType: "Technical",
		CandidateName: "Sam",
		ContextFile:   "Go role",
	}
}

func TestLocateExchange(t *testing.T) {
	transcript := models.Transcript{
		{Role: models.RoleCandidate, Text: "Hi"},
		{Role: models.RoleModel, Text: "Q1"},
		{Role: models.RoleCandidate, Text: "A1"},
	}

	question, answer, err := LocateExchange(transcript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if question != "Q1" {
		t.Fatalf("expected question Q1, got %q", question)
	}
	if answer != "A1" {
		t.Fatalf("expected answer A1, got %q", answer)
	}
}

func TestLocateExchangeSingleCandidateTurn(t *testing.T) {
	transcript := models.Transcript{{Role: models.RoleCandidate, Text: "Hi"}}

	question, answer, err := LocateExchange(transcript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if question != PlaceholderQuestion {
		t.Fatalf("expected placeholder question, got %q", question)
	}
	if answer != "Hi" {
		t.Fatalf("expected answer Hi, got %q", answer)
	}
}

func TestLocateExchangeEmpty(t *testing.T) {
	if _, _, err := LocateExchange(nil); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
}

func TestLocateExchangeNoCandidateTurn(t *testing.T) {
	transcript := models.Transcript{{Role: models.RoleModel, Text: "Q1"}}

	if _, _, err := LocateExchange(transcript); !errors.Is(err, ErrNoCandidateTurn) {
		t.Fatalf("expected ErrNoCandidateTurn, got %v", err)
	}
}

func TestParsePlainJSON(t *testing.T) {
	feedback, err := Parse(`{"score": 85, "critique": "Good.", "betterResponse": "Better."}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feedback.Score != 85 || feedback.Critique != "Good." || feedback.BetterResponse != "Better." {
		t.Fatalf("unexpected feedback: %+v", feedback)
	}
}

func TestParseFencedJSON(t *testing.T) {
	raw := "```json\n{\"score\": 40, \"critique\": \"Vague.\", \"betterResponse\": \"Specifics.\"}\n```"
	feedback, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feedback.Score != 40 {
		t.Fatalf("unexpected score: %d", feedback.Score)
	}
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":           "hello there",
		"missing critique":   `{"score": 10, "betterResponse": "x"}`,
		"score out of range": `{"score": 150, "critique": "x", "betterResponse": "y"}`,
		"negative score":     `{"score": -5, "critique": "x", "betterResponse": "y"}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(raw); !errors.Is(err, ErrMalformedFeedback) {
				t.Fatalf("expected ErrMalformedFeedback, got %v", err)
			}
		})
	}
}

func TestAssess(t *testing.T) {
	provider := &stubProvider{reply: `{"score": 72, "critique": "Decent.", "betterResponse": "More depth."}`}
	gen := newGenerator(t, provider)

	transcript := models.Transcript{
		{Role: models.RoleCandidate, Text: "Hi"},
		{Role: models.RoleModel, Text: "Tell me about Go channels."},
		{Role: models.RoleCandidate, Text: "They move values between goroutines."},
	}

	feedback, err := gen.Assess(context.Background(), transcript, testContext())
	if err != nil {
		t.Fatalf("Assess returned error: %v", err)
	}
	if feedback.Score != 72 {
		t.Fatalf("unexpected score: %d", feedback.Score)
	}
	if provider.calls != 1 {
		t.Fatalf("expected a single scoring request, got %d", provider.calls)
	}
	if !strings.Contains(provider.last, `Question Asked: "Tell me about Go channels."`) {
		t.Fatalf("scoring prompt missing the located question")
	}
	if !strings.Contains(provider.last, "They move values between goroutines.") {
		t.Fatalf("scoring prompt missing the candidate answer")
	}
}

func TestAssessEmptyTranscript(t *testing.T) {
	provider := &stubProvider{}
	gen := newGenerator(t, provider)

	if _, err := gen.Assess(context.Background(), nil, testContext()); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
	if provider.calls != 0 {
		t.Fatalf("provider must not be invoked for an empty transcript")
	}
}

func TestAssessProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("down")}
	gen := newGenerator(t, provider)

	transcript := models.Transcript{{Role: models.RoleCandidate, Text: "Hi"}}
	if _, err := gen.Assess(context.Background(), transcript, testContext()); err == nil {
		t.Fatalf("expected provider error to propagate")
	}
}
