package geminiclient

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const (
	// DefaultModel is used when the configuration names no model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIKeyEnv is the environment variable checked for the
	// API key when the configuration names no other variable
	DefaultAPIKeyEnv = "GEMINI_API_KEY"
)

// FallbackAdvisory is returned when the generative analysis cannot be
// produced, so callers always have something to show
const FallbackAdvisory = "Intelligent analysis is unavailable right now. Review pending requests and driver availability manually."

// Client wraps the Google GenAI API client
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a new GenAI client reading the API key from the
// given environment variable
func NewClient(ctx context.Context, model, apiKeyEnv string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	if apiKeyEnv == "" {
		apiKeyEnv = DefaultAPIKeyEnv
	}

	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("no API key found in environment variable %s", apiKeyEnv)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// GenerateAdvisory sends the prompt and returns the generated text
func (c *Client) GenerateAdvisory(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model returned an empty response")
	}

	return text, nil
}
