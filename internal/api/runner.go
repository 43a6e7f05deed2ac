package api

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

// defaultMaxTokens bounds a single completion response.
const defaultMaxTokens = 8192

// CompleteRequest describes a single text completion call.
type CompleteRequest struct {
	// System is the optional system prompt (role framing).
	System string
	// Prompt is the user message.
	Prompt string
	// Model overrides the client's default model when non-empty.
	Model anthropic.Model
	// Temperature is the optional sampling temperature.
	Temperature *float64
	// MaxTokens bounds the response; 0 uses the default.
	MaxTokens int64
}

// Runner provides simple text-in/text-out completion calls.
// It carries no conversational state; each call is independent.
type Runner struct {
	client *Client
}

// NewRunner creates a new completion runner.
func NewRunner(client *Client) *Runner {
	return &Runner{client: client}
}

// Complete executes one completion call and returns the text response.
// Transport failures, context timeouts, and empty responses are all
// reported as a GenerationError.
func (r *Runner) Complete(ctx context.Context, req CompleteRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = r.client.Model()
	} else {
		model = r.client.TranslateModel(model)
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.System},
		}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	resp, err := r.client.sdk().Messages.New(ctx, params)
	if err != nil {
		return "", &GenerationError{Op: "complete", Err: err}
	}

	r.client.Tracker().Add(resp.Usage.InputTokens, resp.Usage.OutputTokens)

	var result strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			result.WriteString(variant.Text)
		}
	}

	text := strings.TrimSpace(result.String())
	if text == "" {
		return "", &GenerationError{Op: "complete", Err: ErrEmptyResponse}
	}

	return text, nil
}
