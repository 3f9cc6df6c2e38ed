package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"student_portfolio/pkg/core/report"
	"student_portfolio/pkg/core/utils"
)

var previewMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTMLPreview renders the accepted sections to sanitized HTML for the
// in-browser preview. Pipe tables in section text come through as HTML
// tables; everything else falls out as headings, lists, and paragraphs.
func HTMLPreview(state *report.State) (string, error) {
	var md strings.Builder
	md.WriteString("# " + state.ReportType.Title() + "\n\n")
	for _, sec := range state.Sections {
		md.WriteString("## " + sec.Name + "\n\n")
		md.WriteString(utils.CleanText(sec.Content))
		md.WriteString("\n\n")
	}

	var buf bytes.Buffer
	if err := previewMarkdown.Convert([]byte(md.String()), &buf); err != nil {
		return "", fmt.Errorf("PREVIEW_RENDER_ERROR: %w", err)
	}
	return SanitizeHTML(buf.String())
}

// SanitizeHTML strips active content from rendered HTML before it is
// returned to a browser: script/style/embed elements, inline event
// handlers, and javascript: links.
func SanitizeHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("PREVIEW_PARSE_ERROR: %w", err)
	}

	doc.Find("script, style, iframe, object, embed, form").Remove()

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			kept := node.Attr[:0]
			for _, attr := range node.Attr {
				if strings.HasPrefix(strings.ToLower(attr.Key), "on") {
					continue
				}
				if attr.Key == "href" || attr.Key == "src" {
					if strings.HasPrefix(strings.TrimSpace(strings.ToLower(attr.Val)), "javascript:") {
						continue
					}
				}
				kept = append(kept, attr)
			}
			node.Attr = kept
		}
	})

	sanitized, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("PREVIEW_SANITIZE_ERROR: %w", err)
	}
	return sanitized, nil
}
