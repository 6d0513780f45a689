package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"smarthire/interview/internal/llm"
	"smarthire/interview/internal/models"
	"smarthire/interview/internal/prompts"
)

// OpeningMessage is the synthetic candidate turn that opens every interview
// so the first history entry presented to the LLM is candidate-authored.
const OpeningMessage = "Hello, I'm ready to begin the interview."

// DefaultExclusionLimit caps how many past questions feed the denylist so
// the prompt cannot grow without bound.
const DefaultExclusionLimit = 50

var (
	ErrAlreadyStarted = errors.New("interview already started")
	ErrNotStarted     = errors.New("interview not started")
	ErrEmptyResponse  = errors.New("empty response from AI")
)

// QuestionStore is the Question History Store boundary. The read path is
// fail-open: the engine degrades to an empty exclusion list on error. The
// write path is logged and swallowed.
type QuestionStore interface {
	PastQuestions(ctx context.Context, recruiter, interviewType, difficulty string, limit int) ([]string, error)
	Record(ctx context.Context, recruiter, interviewType, difficulty, text string) error
}

// ConversationEngine owns one interview session: the session configuration,
// the append-only transcript, and the turn protocol against the LLM
// provider. Callers must serialize Start/Respond; the engine assumes at
// most one call in flight.
type ConversationEngine struct {
	ictx           models.InterviewContext
	provider       llm.Provider
	questions      QuestionStore
	renderer       *prompts.Renderer
	logger         *zap.Logger
	exclusionLimit int

	history models.Transcript
}

func New(ictx models.InterviewContext, provider llm.Provider, questions QuestionStore, renderer *prompts.Renderer, logger *zap.Logger) *ConversationEngine {
	return &ConversationEngine{
		ictx:           ictx,
		provider:       provider,
		questions:      questions,
		renderer:       renderer,
		logger:         logger,
		exclusionLimit: DefaultExclusionLimit,
	}
}

// SetExclusionLimit overrides the cap on the denylist size. Zero or less
// disables the cap.
func (e *ConversationEngine) SetExclusionLimit(limit int) {
	e.exclusionLimit = limit
}

// Context returns the session configuration.
func (e *ConversationEngine) Context() models.InterviewContext {
	return e.ictx
}

// Start opens the interview: it seeds the transcript with the synthetic
// opening candidate turn, asks the provider to greet and pose a first
// question, and records that question. Valid only while the transcript is
// empty. On provider failure the transcript is left untouched.
func (e *ConversationEngine) Start(ctx context.Context) (string, error) {
	if len(e.history) != 0 {
		return "", ErrAlreadyStarted
	}

	opening := models.Turn{Role: models.RoleCandidate, Text: OpeningMessage}
	pending := models.Transcript{opening}

	instruction := e.renderer.SystemPrompt(e.ictx) +
		e.exclusionClause(ctx) +
		e.renderer.OpeningInstruction(e.ictx)

	reply, err := e.generate(ctx, instruction, pending)
	if err != nil {
		return "", err
	}

	e.history = append(pending, models.Turn{Role: models.RoleModel, Text: reply})
	e.recordQuestion(ctx, reply)
	return reply, nil
}

// Respond forwards one candidate answer and returns the recruiter's next
// utterance. Input is validated before any remote call; on provider failure
// the transcript is exactly as it was before the call, candidate turn
// included.
func (e *ConversationEngine) Respond(ctx context.Context, message string) (string, error) {
	if len(e.history) == 0 {
		return "", ErrNotStarted
	}

	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", &models.ErrorResponse{
			Code:    "empty_response",
			Message: "Response cannot be empty",
		}
	}
	if utf8.RuneCountInString(trimmed) > models.MaxResponseLength {
		return "", &models.ErrorResponse{
			Code:    "response_too_long",
			Message: "Response is too long. Please keep it under 10000 characters.",
		}
	}

	pending := append(e.history.Clone(), models.Turn{Role: models.RoleCandidate, Text: trimmed})

	// Context fields are static per session, so re-rendering is idempotent;
	// the exclusion list is re-fetched because it grows every turn.
	instruction := e.renderer.SystemPrompt(e.ictx) +
		e.exclusionClause(ctx) +
		e.renderer.FollowupInstruction()

	reply, err := e.generate(ctx, instruction, pending)
	if err != nil {
		return "", err
	}

	e.history = append(pending, models.Turn{Role: models.RoleModel, Text: reply})
	e.recordQuestion(ctx, reply)
	return reply, nil
}

// History returns a snapshot of the transcript. The caller may keep it; it
// never aliases the engine's own slice.
func (e *ConversationEngine) History() models.Transcript {
	return e.history.Clone()
}

// Reset discards the transcript wholesale, returning the session to its
// ready state. Persisted question records are unaffected.
func (e *ConversationEngine) Reset() {
	e.history = nil
}

func (e *ConversationEngine) generate(ctx context.Context, instruction string, history models.Transcript) (string, error) {
	reply, err := e.provider.GenerateTurn(ctx, instruction, history)
	if err != nil {
		return "", fmt.Errorf("failed to generate interview turn: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", ErrEmptyResponse
	}
	return reply, nil
}

// exclusionClause fetches past questions for this session's key and renders
// the denylist. Fetch failure degrades to no exclusions.
func (e *ConversationEngine) exclusionClause(ctx context.Context) string {
	past, err := e.questions.PastQuestions(ctx, e.ictx.RecruiterName, e.ictx.InterviewType, e.ictx.Difficulty, e.exclusionLimit)
	if err != nil {
		e.logger.Warn("failed to fetch past questions, continuing without exclusions",
			zap.String("recruiter", e.ictx.RecruiterName),
			zap.Error(err))
		return ""
	}
	return e.renderer.ExclusionClause(past)
}

// recordQuestion persists the generated question. Losing one history write
// must not abort an otherwise successful turn.
func (e *ConversationEngine) recordQuestion(ctx context.Context, question string) {
	err := e.questions.Record(ctx, e.ictx.RecruiterName, e.ictx.InterviewType, e.ictx.Difficulty, question)
	if err != nil {
		e.logger.Warn("failed to record generated question",
			zap.String("recruiter", e.ictx.RecruiterName),
			zap.Error(err))
	}
}
