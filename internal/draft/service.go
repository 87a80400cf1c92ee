package draft

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/joelkehle/trustreply/internal/llm"
	"github.com/joelkehle/trustreply/internal/notice"
)

const systemPrompt = "You are a senior tax practitioner drafting formal replies to Income Tax registration notices. Follow the layout instructions exactly and output plain text only."

type Service struct {
	client *llm.Client
}

func NewService(client *llm.Client) *Service {
	return &Service{client: client}
}

// DraftReply generates the letter for the case. Low temperature: the content
// is already fixed by the clause texts, the model only formats.
func (s *Service) DraftReply(ctx context.Context, c *notice.Case) (string, error) {
	text, err := s.client.Generate(ctx, "draft-reply", llm.Request{
		System: systemPrompt,
		Blocks: []anthropic.ContentBlockParamUnion{
			anthropic.NewTextBlock(BuildPrompt(c)),
		},
		MaxTokens:   8192,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("draft reply: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("draft reply: empty response")
	}
	return text, nil
}
