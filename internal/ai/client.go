package ai

import (
	"context"
	"fmt"
	"os"

	"github.com/mysterydesk/gumshoe/internal/errors"
	"github.com/sashabaranov/go-openai"
)

// Model identifiers for the two latency/quality tradeoffs in use.
const (
	// ModelDefault answers interview questions and runs clue/suspect
	// analyses where latency matters more than deep reasoning.
	ModelDefault = openai.GPT3Dot5Turbo1106
	// ModelPreview handles case generation and solution adjudication where
	// reasoning quality matters more than latency.
	ModelPreview = openai.GPT4TurboPreview
)

const MaxTokens = 4096

// ErrTransport covers network failures, non-success statuses, and timeouts
// from the completion endpoint. Not retried automatically; callers decide.
var ErrTransport = errors.NewSentinel("completion transport failed")

// ErrFormat signals that the response envelope lacked the expected
// completion field.
var ErrFormat = errors.NewSentinel("completion response malformed")

// Request is a single completion call: ordered role/content messages plus
// sampling parameters.
type Request struct {
	Messages    []openai.ChatCompletionMessage
	Model       string
	Temperature float32
	MaxTokens   int
}

// Completer produces one text completion for a request. Implemented by
// Client; faked in tests.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

type Client struct {
	client *openai.Client
}

func NewClient() Client {
	return Client{
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
	}
}

// Complete sends the request and returns the raw completion text.
// Fails with ErrTransport or ErrFormat; no business logic lives here.
func (c Client) Complete(ctx context.Context, req Request) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = MaxTokens
	}
	completion, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{ //nolint:exhaustruct // this is better for readability
			Model:       req.Model,
			MaxTokens:   maxTokens,
			Temperature: req.Temperature,
			Messages:    req.Messages,
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, errors.Wrap(err, "create chat completion"))
	}
	if len(completion.Choices) == 0 {
		return "", errors.Wrap(ErrFormat, "completion has no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
