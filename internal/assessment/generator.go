package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"smarthire/interview/internal/llm"
	"smarthire/interview/internal/models"
	"smarthire/interview/internal/prompts"
	"smarthire/interview/internal/utils"
)

// PlaceholderQuestion stands in for "the question asked" when the candidate
// turn has no preceding turn at all.
const PlaceholderQuestion = "Start of interview"

var (
	ErrNoHistory         = errors.New("no conversation history to analyze")
	ErrNoCandidateTurn   = errors.New("no candidate response found to analyze")
	ErrMalformedFeedback = errors.New("malformed feedback from AI")
)

// Generator produces a post-hoc quality assessment of the most recent
// candidate answer. Stateless, single shot: no retry, no caching.
type Generator struct {
	provider llm.Provider
	renderer *prompts.Renderer
}

func NewGenerator(provider llm.Provider, renderer *prompts.Renderer) *Generator {
	return &Generator{provider: provider, renderer: renderer}
}

// Assess locates the last candidate turn and the question that preceded it,
// issues one scoring request, and parses the structured result.
func (g *Generator) Assess(ctx context.Context, transcript models.Transcript, ictx models.InterviewContext) (*models.Feedback, error) {
	question, answer, err := LocateExchange(transcript)
	if err != nil {
		return nil, err
	}

	prompt := g.renderer.AssessmentPrompt(ictx, question, answer)

	raw, err := g.provider.GenerateTurn(ctx, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate feedback: %w", err)
	}

	feedback, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return feedback, nil
}

// LocateExchange scans the transcript from the tail for the most recent
// candidate turn and pairs it with the immediately preceding turn as the
// question asked.
func LocateExchange(transcript models.Transcript) (question, answer string, err error) {
	if len(transcript) == 0 {
		return "", "", ErrNoHistory
	}

	idx := transcript.LastCandidate()
	if idx < 0 {
		return "", "", ErrNoCandidateTurn
	}

	question = PlaceholderQuestion
	if idx > 0 {
		question = transcript[idx-1].Text
	}
	return question, transcript[idx].Text, nil
}

// Parse decodes the scoring response, tolerating a markdown code fence
// around the JSON object.
func Parse(raw string) (*models.Feedback, error) {
	cleaned := utils.StripFences(raw)

	var feedback models.Feedback
	if err := json.Unmarshal([]byte(cleaned), &feedback); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeedback, err)
	}
	if !feedback.Valid() {
		return nil, fmt.Errorf("%w: missing fields or score out of range", ErrMalformedFeedback)
	}
	return &feedback, nil
}
