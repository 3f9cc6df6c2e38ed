// Package render turns accepted report sections into a formatted .docx
// document. Table-backed sections are parsed into structured records first;
// anything that fails to parse degrades to headings and bullet lists.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fumiama/go-docx"

	"student_portfolio/pkg/core/report"
	"student_portfolio/pkg/core/utils"
)

const (
	headerFill = "4472C4"
	altRowFill = "D9E1F2"
	whiteText  = "FFFFFF"
	grayText   = "808080"

	// Full-width table in twips for 1" margins on A4/Letter.
	tableWidth = 9000
)

// heading half-point font sizes by level. Level 0 is the document title.
var headingSizes = map[int]string{
	0: "40",
	1: "32",
	2: "28",
	3: "26",
	4: "24",
}

// WriteDocument renders the state into outDir and returns the filename.
// outDir is created if missing; an existing file for the same student and
// roles is overwritten.
func WriteDocument(state *report.State, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("DOCX_OUTPUT_DIR_ERROR: %w", err)
	}

	doc := BuildDocument(state)
	filename := Filename(state.ReportType, state.Inputs)
	path := filepath.Join(outDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("DOCX_CREATE_ERROR: %w", err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return "", fmt.Errorf("DOCX_WRITE_ERROR: %w", err)
	}
	fmt.Printf("[Render] Wrote %s\n", path)
	return filename, nil
}

// BuildDocument assembles the in-memory document: title, generation date,
// student profile summary, then one block per accepted section.
func BuildDocument(state *report.State) *docx.Docx {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.Justification("center")
	title.AddText(state.ReportType.Title()).Size(headingSizes[0]).Bold()

	datePara := doc.AddParagraph()
	datePara.Justification("center")
	datePara.AddText("Generated on: " + time.Now().Format("January 02, 2006")).Size("22").Color(grayText)

	doc.AddParagraph()

	addHeading(doc, "Student Profile Summary", 1)
	addProfileSummary(doc, state.Inputs)
	doc.AddParagraph()

	addHeading(doc, "Detailed Report", 1)
	for _, sec := range state.Sections {
		content := utils.CleanText(sec.Content)
		addHeading(doc, sec.Name, 2)
		if !renderSection(doc, state.ReportType, sec.Name, content) {
			renderFallback(doc, content)
		}
	}
	return doc
}

func addHeading(doc *docx.Docx, text string, level int) {
	size, ok := headingSizes[level]
	if !ok {
		size = headingSizes[4]
	}
	doc.AddParagraph().AddText(text).Size(size).Bold()
}

func addBullet(doc *docx.Docx, text string) {
	doc.AddParagraph().AddText("• " + text)
}

// addFilledTable writes rows into a new table. The first row gets the blue
// header treatment and odd data rows the light fill, matching the document
// theme used throughout.
func addFilledTable(doc *docx.Docx, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}

	tbl := doc.AddTable(len(rows), cols, tableWidth, nil)
	for rowIdx, rowData := range rows {
		for colIdx, cellText := range rowData {
			if colIdx >= cols {
				break
			}
			run := tbl.TableRows[rowIdx].TableCells[colIdx].AddParagraph().AddText(cellText)
			switch {
			case rowIdx == 0:
				run.Bold().Color(whiteText).Shade("clear", "auto", headerFill)
			case rowIdx%2 == 1:
				run.Shade("clear", "auto", altRowFill)
			}
		}
	}
}

// addCellLines fills one table cell with multiple bullet lines.
func addCellLines(cell *docx.WTableCell, lines []string, fill string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	for _, line := range lines {
		text := line
		if line != "" {
			text = "• " + line
		}
		run := cell.AddParagraph().AddText(text)
		if fill != "" {
			run.Shade("clear", "auto", fill)
		}
	}
}

// addProfileSummary writes the 10-row label/value intake table.
func addProfileSummary(doc *docx.Docx, in report.Inputs) {
	orNA := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "NA"
		}
		return s
	}

	rows := [][2]string{
		{"Name of Student", orNA(in.StudentName)},
		{"Standard / Year", orNA(in.Standard)},
		{"Board", orNA(in.Board)},
		{"Highest Skills", formatSkills(in.HighestSkills, in.SkillPercentages)},
		{"Thinking Pattern", orNA(in.ThinkingPattern)},
		{"Achievement Style", formatSkills(in.AchievementStyle, in.AchievementPercentages)},
		{"Learning & Communication Style", formatSkills(in.LearningStyle, in.LearningPercentages)},
		{"Quotients", formatSkills(in.Quotients, in.QuotientPercentages)},
		{"Personality Type", orNA(in.PersonalityType)},
		{"Suggested Career Roles", orNA(in.CareerRoles)},
	}

	tbl := doc.AddTable(len(rows), 2, tableWidth, nil)
	for i, row := range rows {
		tbl.TableRows[i].TableCells[0].AddParagraph().AddText(row[0]).Bold()
		tbl.TableRows[i].TableCells[1].AddParagraph().AddText(row[1])
	}
}

// formatSkills renders "Name (pct%)" pairs, matching the prompt-side format
// so the summary table and the prompt describe the student identically.
func formatSkills(skills []string, percentages map[string]float64) string {
	if len(skills) == 0 {
		return "NA"
	}
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		if pct := percentages[s]; pct > 0 {
			parts = append(parts, fmt.Sprintf("%s (%g%%)", s, pct))
		} else {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// renderFallback emits section content as bullets and paragraphs when no
// structured layout applies.
func renderFallback(doc *docx.Docx, content string) {
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "• "):
			addBullet(doc, strings.TrimSpace(line[2:]))
		case strings.HasPrefix(line, "#"):
			addHeading(doc, strings.TrimSpace(strings.TrimLeft(line, "#")), 3)
		default:
			doc.AddParagraph().AddText(line)
		}
	}
	doc.AddParagraph()
}
