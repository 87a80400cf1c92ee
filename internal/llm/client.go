package llm

import (
	"context"
	"errors"
	"net"
	"os"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Model used for every call. Extraction and drafting share one model; the
// call sites differ only in prompt, blocks, and temperature.
const Model = anthropic.ModelClaudeSonnet4_20250514

var ErrUnconfigured = errors.New("ANTHROPIC_API_KEY not configured")

type failureClass int

const (
	failureTimeout failureClass = iota
	failureRateLimit
	failureServer
	failureClient
)

// Messager is the slice of the Anthropic SDK the client consumes; tests
// substitute it.
type Messager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type Client struct {
	messages Messager
	tracer   trace.Tracer
}

func NewClient(messages Messager) *Client {
	return &Client{messages: messages, tracer: otel.Tracer("trustreply/llm")}
}

func NewClientFromEnv() (*Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, ErrUnconfigured
	}
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return NewClient(&c.Messages), nil
}

// Request is one model invocation. Blocks form a single user message.
type Request struct {
	System      string
	Blocks      []anthropic.ContentBlockParamUnion
	MaxTokens   int64
	Temperature float64
}

// Generate performs one call and returns the concatenated text content.
func (c *Client) Generate(ctx context.Context, name string, req Request) (string, error) {
	ctx, span := c.tracer.Start(ctx, "llm.generate", trace.WithAttributes(
		attribute.String("llm.call", name),
		attribute.String("llm.model", string(Model)),
		attribute.Int64("llm.max_tokens", req.MaxTokens),
	))
	defer span.End()

	params := anthropic.MessageNewParams{
		Model:       Model,
		MaxTokens:   req.MaxTokens,
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(req.Blocks...)},
		Temperature: anthropic.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	resp, err := c.messages.New(ctx, params)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

func classifyTransportError(err error) failureClass {
	if errors.Is(err, context.DeadlineExceeded) {
		return failureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return failureTimeout
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"):
		return failureRateLimit
	case strings.Contains(msg, "status code: 5") || strings.Contains(msg, "server error"):
		return failureServer
	case strings.Contains(msg, "status code: 4"):
		return failureClient
	default:
		return failureServer
	}
}

func retryable(class failureClass) bool {
	return class == failureTimeout || class == failureRateLimit || class == failureServer
}

func backoffDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 1 * time.Second
	}
	return 2 * time.Second
}
