package llm

import (
	"context"
	"strings"

	"smarthire/interview/internal/models"
)

// MaxInstructionLength bounds the combined system instruction sent to a provider.
const MaxInstructionLength = 100000

// defines the interface for LLM providers
type Provider interface {
	// GenerateTurn sends the system instruction plus the ordered turn
	// history and returns the model's next utterance. The first history
	// entry must be candidate-authored.
	GenerateTurn(ctx context.Context, instruction string, history models.Transcript) (string, error)
	GetProviderName() string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes
// For current and future use across different providers
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)

// ValidateRequest enforces the capability contract shared by all providers:
// a non-blank, bounded instruction and a history opening with a candidate turn.
func ValidateRequest(provider, instruction string, history models.Transcript) error {
	if strings.TrimSpace(instruction) == "" {
		return &ProviderError{
			Provider: provider,
			Code:     ErrCodeInvalidInput,
			Message:  "Instruction cannot be empty",
		}
	}
	if len(instruction) > MaxInstructionLength {
		return &ProviderError{
			Provider: provider,
			Code:     ErrCodeInvalidInput,
			Message:  "Instruction is too long",
		}
	}
	if len(history) > 0 && history[0].Role != models.RoleCandidate {
		return &ProviderError{
			Provider: provider,
			Code:     ErrCodeInvalidInput,
			Message:  "History must start with a candidate turn",
		}
	}
	return nil
}
