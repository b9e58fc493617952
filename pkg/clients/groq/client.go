// Package groq wraps the Groq chat-completion API, which speaks the OpenAI
// wire protocol. It is the only component in the system that performs
// network I/O during a chat turn.
package groq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/Joako199002/proyecto-alzarea/pkg/config"
	"github.com/Joako199002/proyecto-alzarea/pkg/session"
)

// Sentinel errors for completion failures. Callers branch on these to pick
// a user-facing status; the wrapped detail is for server-side logs only and
// never carries credentials.
var (
	// ErrTimeout is returned when the upstream call exceeds its deadline.
	ErrTimeout = errors.New("groq: completion timed out")
	// ErrUpstream is returned for transport failures, non-2xx responses and
	// malformed completions.
	ErrUpstream = errors.New("groq: upstream request failed")
)

// Client sends a session's full message history to the completion API.
// It applies a fixed model, temperature and output cap, enforces a single
// per-call timeout, and never retries.
type Client struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
}

// NewFromConfig constructs a client from app config.
func NewFromConfig(cfg config.GroqConfig) *Client {
	// Retries are disabled: a failed turn is surfaced to the user, who
	// decides whether to resend.
	return &Client{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.URL),
			option.WithMaxRetries(0),
		),
		model:       cfg.Model,
		maxTokens:   int64(cfg.MaxTokens),
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout(),
	}
}

// Complete sends the ordered history (system prompt first) and returns the
// assistant's textual reply.
func (c *Client) Complete(ctx context.Context, history []session.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
		Messages:    toParams(history),
	}

	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, apiErr.StatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: response carried no choices", ErrUpstream)
	}
	return response.Choices[0].Message.Content, nil
}

func toParams(history []session.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case session.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case session.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
