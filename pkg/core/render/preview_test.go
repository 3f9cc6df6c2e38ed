package render

import (
	"strings"
	"testing"

	"student_portfolio/pkg/core/report"
)

func TestHTMLPreview(t *testing.T) {
	state := &report.State{
		ReportType: report.TypeCareer,
		Sections: []report.Section{
			{Name: "1. Detailed Career Role Breakdown", Content: "Career Role: Data Scientist\nTechnical Skills: Python, SQL"},
			{Name: "3. Emerging Trends and Future Job Prospects", Content: "| A | B |\n|---|---|\n| 1 | 2 |"},
		},
	}

	html, err := HTMLPreview(state)
	if err != nil {
		t.Fatalf("HTMLPreview failed: %v", err)
	}
	if !strings.Contains(html, "Career Development Report") {
		t.Error("expected document title in preview")
	}
	if !strings.Contains(html, "1. Detailed Career Role Breakdown") {
		t.Error("expected section heading in preview")
	}
	if !strings.Contains(html, "<table>") {
		t.Error("expected pipe table to render as an HTML table")
	}
}

func TestSanitizeHTMLStripsActiveContent(t *testing.T) {
	dirty := `<p onclick="steal()">hello</p><script>alert(1)</script><a href="javascript:bad()">x</a><a href="https://example.com">ok</a>`

	clean, err := SanitizeHTML(dirty)
	if err != nil {
		t.Fatalf("SanitizeHTML failed: %v", err)
	}
	for _, banned := range []string{"<script", "onclick", "javascript:"} {
		if strings.Contains(clean, banned) {
			t.Errorf("sanitized output still contains %q: %s", banned, clean)
		}
	}
	if !strings.Contains(clean, "hello") {
		t.Error("text content must survive sanitization")
	}
	if !strings.Contains(clean, `href="https://example.com"`) {
		t.Error("safe links must survive sanitization")
	}
}
