// Package extract turns an uploaded 12A/80G notice document into the
// structured fields the wizard needs. Extraction is best-effort: every field
// of the result may be empty, and an unrecognized notice type falls back to
// the 80G default rather than failing the intake.
package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/joelkehle/trustreply/internal/llm"
	"github.com/joelkehle/trustreply/internal/notice"
)

const systemPrompt = "You are a tax practitioner's assistant reading Income Tax registration notices issued under section 12A or 80G. Respond with strict JSON only."

const extractionPrompt = `Analyze this Income Tax notice (12A/80G).
Extract details into a valid JSON object:
- trustName: Legal name.
- pan: 10-char PAN.
- din: DIN/Notice Number.
- date: Date in YYYY-MM-DD.
- noticeType: "RULE_17A" (for 12A) or "RULE_11AA" (for 80G).`

// rawResult is the wire shape of the model's answer. Every field is
// optional; mapping to the domain type applies the fallbacks.
type rawResult struct {
	TrustName  string `json:"trustName"`
	PAN        string `json:"pan"`
	DIN        string `json:"din"`
	Date       string `json:"date"`
	NoticeType string `json:"noticeType"`
}

type Service struct {
	exec *llm.Executor
}

func NewService(client *llm.Client) *Service {
	return &Service{exec: llm.NewExecutor(client)}
}

// ExtractNotice sends the document to the model and returns the normalized
// partial result.
func (s *Service) ExtractNotice(ctx context.Context, data []byte, mediaType string) (notice.Extracted, error) {
	if len(data) == 0 {
		return notice.Extracted{}, fmt.Errorf("empty document")
	}

	req := llm.Request{
		System: systemPrompt,
		Blocks: []anthropic.ContentBlockParamUnion{
			documentBlock(data, mediaType),
			anthropic.NewTextBlock(extractionPrompt),
		},
		MaxTokens: 1024,
	}

	var raw rawResult
	if err := s.exec.RunJSON(ctx, "extract-notice", req, &raw, nil); err != nil {
		return notice.Extracted{}, err
	}
	return mapResult(raw), nil
}

// documentBlock wraps the upload as a PDF document block or an inline image
// block. A missing media type is sniffed from the %PDF magic.
func documentBlock(data []byte, mediaType string) anthropic.ContentBlockParamUnion {
	mediaType = strings.TrimSpace(mediaType)
	if mediaType == "" {
		mediaType = SniffMediaType(data)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	if mediaType == "application/pdf" {
		return anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{Data: encoded})
	}
	return anthropic.NewImageBlockBase64(mediaType, encoded)
}

// SniffMediaType guesses the document media type when the upload carries
// none: PDF by magic bytes, JPEG otherwise.
func SniffMediaType(data []byte) string {
	if len(data) >= 4 && string(data[:4]) == "%PDF" {
		return "application/pdf"
	}
	return "image/jpeg"
}

func mapResult(raw rawResult) notice.Extracted {
	return notice.Extracted{
		TrustName:  strings.TrimSpace(raw.TrustName),
		PAN:        strings.TrimSpace(raw.PAN),
		DIN:        strings.TrimSpace(raw.DIN),
		Date:       strings.TrimSpace(raw.Date),
		NoticeType: mapNoticeType(raw.NoticeType),
	}
}

// mapNoticeType normalizes the model's notice-type guess. Anything that does
// not clearly indicate a 12A notice falls back to 80G, matching the wizard's
// default clause set.
func mapNoticeType(guess string) notice.NoticeType {
	g := strings.ToUpper(strings.TrimSpace(guess))
	switch {
	case g == string(notice.NoticeRule17A):
		return notice.NoticeRule17A
	case g == string(notice.NoticeRule11AA):
		return notice.NoticeRule11AA
	case strings.Contains(g, "17A") || strings.Contains(g, "12A"):
		return notice.NoticeRule17A
	case strings.Contains(g, "11AA") || strings.Contains(g, "80G"):
		return notice.NoticeRule11AA
	default:
		return notice.NoticeRule11AA
	}
}
