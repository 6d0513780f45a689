package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"smarthire/interview/internal/llm"
	"smarthire/interview/internal/models"
)

// Client represents a Gemini LLM client

type Client struct {
	client *genai.Client
	config *Config
}

func NewClient(config *Config) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client: client,
		config: config,
	}, nil
}

// GenerateTurn sends the interview history to Gemini and returns the next
// recruiter utterance.
func (c *Client) GenerateTurn(ctx context.Context, instruction string, history models.Transcript) (string, error) {
	if err := llm.ValidateRequest("gemini", instruction, history); err != nil {
		return "", err
	}

	temperature := float64(c.config.Temperature)
	cfg := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.config.Model, toContents(instruction, history), cfg)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate interview turn",
			Err:      err,
		}
	}

	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}

	return text, nil
}

// toContents maps transcript roles onto the Gemini wire roles and appends
// the combined instruction as the final user message. Gemini requires the
// first content to carry the user role, which the candidate-first history
// contract guarantees.
func toContents(instruction string, history models.Transcript) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := "model"
		if turn.Role == models.RoleCandidate {
			role = "user"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: instruction}},
	})
	return contents
}

func (c *Client) GetProviderName() string {
	return "gemini"
}
