package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
)

// Executor runs JSON-producing calls with bounded retry: transport failures
// back off and retry, malformed or invalid content retries with feedback
// appended to the prompt. Three attempts total, then the last failure
// surfaces to the caller.
type Executor struct {
	client *Client
}

func NewExecutor(client *Client) *Executor {
	return &Executor{client: client}
}

func (e *Executor) RunJSON(ctx context.Context, name string, req Request, out any, validate func() error) error {
	feedback := ""
	base := req
	for attempt := 1; attempt <= 3; attempt++ {
		req = base
		if feedback != "" {
			req.Blocks = append(append([]anthropic.ContentBlockParamUnion{}, base.Blocks...), anthropic.NewTextBlock(feedback))
		}

		raw, err := e.client.Generate(ctx, name, req)
		if err != nil {
			if retryable(classifyTransportError(err)) && attempt < 3 {
				time.Sleep(backoffDelay(attempt))
				continue
			}
			return fmt.Errorf("%s transport failure: %w", name, err)
		}

		raw = strings.TrimSpace(raw)
		if raw == "" {
			if attempt < 3 {
				feedback = "Your previous response was empty. Respond with valid JSON."
				continue
			}
			return fmt.Errorf("%s failed: empty response", name)
		}

		clean := stripCodeFences(raw)
		if err := json.Unmarshal([]byte(clean), out); err != nil {
			if attempt < 3 {
				feedback = "Your previous response was not valid JSON. Respond with only valid JSON."
				continue
			}
			return fmt.Errorf("%s failed json parse: %w", name, err)
		}
		if validate != nil {
			if err := validate(); err != nil {
				if attempt < 3 {
					feedback = fmt.Sprintf("Your response failed validation: %s. Fix these issues.", err)
					continue
				}
				return fmt.Errorf("%s failed validation: %w", name, err)
			}
		}
		return nil
	}
	return fmt.Errorf("%s failed after retries", name)
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		parts := strings.SplitN(s, "\n", 2)
		if len(parts) == 2 {
			s = parts[1]
		}
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}
