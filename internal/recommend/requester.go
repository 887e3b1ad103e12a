package recommend

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/octobees/product-advisor/internal/config"
)

const (
	temperature = 0.7
	maxTokens   = 512
)

// Recommender produces a free-text recommendation for a shortlist.
type Recommender interface {
	Recommend(ctx context.Context, shortlist, query, features string) (string, error)
}

// Requester sends recommendation prompts to an OpenAI-compatible
// chat-completion endpoint.
type Requester struct {
	client *openai.Client
	model  string
}

// NewRequester builds a requester from configuration. The base URL may point
// at any OpenAI-compatible endpoint; the default targets Groq.
func NewRequester(cfg *config.Config) *Requester {
	clientCfg := openai.DefaultConfig(cfg.CompletionAPIKey)
	clientCfg.BaseURL = strings.TrimRight(cfg.CompletionBaseURL, "/")
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout}
	return &Requester{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.CompletionModel,
	}
}

// Recommend sends one chat completion with the whole prompt as a single user
// message and returns the trimmed generated text. On failure it returns a
// *Failure so the caller can distinguish an upstream status error from a
// transport error.
func (r *Requester) Recommend(ctx context.Context, shortlist, query, features string) (string, error) {
	prompt := BuildPrompt(shortlist, query, features)

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", &Failure{Kind: FailureTransport, Detail: "completion response contained no choices"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// classify maps client errors onto the failure taxonomy: any response with a
// status code becomes FailureStatus, everything else FailureTransport.
func classify(err error) *Failure {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &Failure{Kind: FailureStatus, StatusCode: apiErr.HTTPStatusCode, Detail: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0 {
		return &Failure{Kind: FailureStatus, StatusCode: reqErr.HTTPStatusCode, Detail: reqErr.Error()}
	}
	return &Failure{Kind: FailureTransport, Detail: err.Error()}
}

var _ Recommender = (*Requester)(nil)
