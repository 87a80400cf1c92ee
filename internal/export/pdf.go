// Package export renders the finished letter to a paged PDF via headless
// Chromium. The first line of the letter is set as the title, the second as
// a subtitle, the rest as body text with line breaks preserved.
package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

type LetterPDFRenderer struct {
	chromePath string
}

func NewLetterPDFRenderer() *LetterPDFRenderer {
	return &LetterPDFRenderer{chromePath: detectChromePath()}
}

func (r *LetterPDFRenderer) Render(ctx context.Context, letter string) ([]byte, error) {
	htmlDoc, err := buildHTML(letter)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.6).
				WithMarginBottom(0.75).
				WithMarginLeft(0.6).
				WithMarginRight(0.6).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

// buildHTML lays the letter out for print: line 1 as the title, line 2 as
// the subtitle, the remainder as body. Hard wraps keep the address and
// signature blocks on their own lines.
func buildHTML(letter string) (string, error) {
	title, subtitle, body := splitLetter(letter)

	var content strings.Builder
	md := goldmark.New(goldmark.WithRendererOptions(ghtml.WithHardWraps()))
	if err := md.Convert([]byte(body), &content); err != nil {
		return "", fmt.Errorf("letter convert: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!doctype html><html><head><meta charset='utf-8'><title>Notice Reply</title><style>")
	b.WriteString("body{font-family:Georgia,'Times New Roman',serif;font-size:12pt;line-height:1.5;color:#111;margin:0;}")
	b.WriteString(".letter-title{font-size:16pt;font-weight:700;text-align:center;margin:0 0 2pt;}")
	b.WriteString(".letter-subtitle{font-size:12pt;font-weight:600;text-align:center;margin:0 0 14pt;}")
	b.WriteString(".letter-body p{margin:0 0 10pt;}")
	b.WriteString("@media print{@page{size:A4;margin:14mm;}}")
	b.WriteString("</style></head><body>")
	b.WriteString("<div class='letter-title'>" + html.EscapeString(title) + "</div>")
	if subtitle != "" {
		b.WriteString("<div class='letter-subtitle'>" + html.EscapeString(subtitle) + "</div>")
	}
	b.WriteString("<div class='letter-body'>" + content.String() + "</div>")
	b.WriteString("</body></html>")
	return b.String(), nil
}

func splitLetter(letter string) (title, subtitle, body string) {
	lines := strings.Split(strings.TrimSpace(letter), "\n")
	if len(lines) > 0 {
		title = strings.TrimSpace(lines[0])
	}
	if len(lines) > 1 {
		subtitle = strings.TrimSpace(lines[1])
	}
	if len(lines) > 2 {
		body = strings.TrimSpace(strings.Join(lines[2:], "\n"))
	}
	return title, subtitle, body
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
