package render

import (
	"strings"

	"github.com/fumiama/go-docx"

	"student_portfolio/pkg/core/parse"
	"student_portfolio/pkg/core/report"
)

// Column sets for the record- and plan-backed sections. Order here is the
// column order in the rendered tables.
var (
	academicColumns      = []string{"Month", "Activity", "Technical Skills", "Soft Skills", "Learning Material", "Objective"}
	nonAcademicColumns   = []string{"Month", "Activity", "Technical Skills", "Soft Skills", "Learning Outcome", "Objective"}
	habitColumns         = []string{"Month", "Activity", "Action Plan", "Objective", "Habits to Develop", "Soft Skills", "Learning Outcomes"}
	physicalColumns      = []string{"Month", "Activity", "Objective", "Physical & Mental Skills Developed", "Soft Skills", "Learning Outcomes"}
	psychologicalColumns = []string{"Month", "Activity", "Objective", "Psychological Skills Developed", "Soft Skills", "Learning Outcomes"}
	readingColumns       = []string{"Book Name", "Author", "Publication", "Why Should This Book Be Read?"}
	healthColumns        = []string{"Category", "Recommendation", "Benefits for Mental Health", "Benefits for Physical Health"}
)

// renderSection routes a section to its structured layout. Returns false
// when the content did not parse, so the caller can fall back to plain
// formatting.
func renderSection(doc *docx.Docx, t report.Type, name, content string) bool {
	if t == report.TypeCareer {
		switch {
		case strings.Contains(name, "1. Detailed Career Role Breakdown"):
			return renderCareerBreakdown(doc, content)
		case strings.Contains(name, "2. Industry Specific Requirements"):
			return renderIndustryRequirements(doc, content)
		case strings.Contains(name, "3. Emerging Trends"):
			return renderTrendTables(doc, content)
		case strings.Contains(name, "4. Recommended Internships"):
			return renderInternships(doc, content)
		case strings.Contains(name, "5. Professional Networking"):
			return renderNetworking(doc, content)
		case strings.Contains(name, "6. Guidelines for Progress Monitoring"):
			return renderProgressMatrix(doc, content)
		}
		return false
	}

	switch {
	case strings.Contains(name, "1. Academic Interventions"):
		return renderYearPlan(doc, content, academicColumns)
	case strings.Contains(name, "2. Non-Academic Interventions"):
		return renderYearPlan(doc, content, nonAcademicColumns)
	case strings.Contains(name, "3. Habit Reengineering"):
		return renderYearPlan(doc, content, habitColumns)
	case strings.Contains(name, "4. Physical Grooming"):
		return renderYearPlan(doc, content, physicalColumns)
	case strings.Contains(name, "5. Psychological Grooming"):
		return renderYearPlan(doc, content, psychologicalColumns)
	case strings.Contains(name, "6. Suggested Reading"):
		return renderRecordTable(doc, content, "Book Name", readingColumns)
	case strings.Contains(name, "7. Health Discipline"):
		return renderRecordTable(doc, content, "Category", healthColumns)
	}
	return false
}

// renderCareerBreakdown writes one Aspect/Details table per career role.
func renderCareerBreakdown(doc *docx.Docx, content string) bool {
	profiles := parse.RoleProfiles(content)
	if len(profiles) == 0 {
		return false
	}
	for _, p := range profiles {
		addHeading(doc, p.Role, 3)
		rows := [][]string{{"Aspect", "Details"}}
		for _, f := range p.Fields {
			rows = append(rows, []string{f.Key, f.Value})
		}
		addFilledTable(doc, rows)
		doc.AddParagraph()
	}
	return true
}

// renderIndustryRequirements writes role and level headings with labeled
// bullets. This section stays list-shaped on purpose: certification details
// read better as steps than cells.
func renderIndustryRequirements(doc *docx.Docx, content string) bool {
	roles := parse.IndustryRequirements(content)
	if len(roles) == 0 {
		return false
	}
	for _, role := range roles {
		addHeading(doc, "For "+role.Role+":", 3)
		for _, item := range role.Extra {
			addBullet(doc, item)
		}
		for _, level := range role.Levels {
			addHeading(doc, level.Name, 4)
			for _, item := range level.Items {
				addBullet(doc, item)
			}
		}
	}
	doc.AddParagraph()
	return true
}

func renderTrendTables(doc *docx.Docx, content string) bool {
	tables := parse.TrendTables(content)
	if len(tables) == 0 {
		return false
	}
	for _, rt := range tables {
		addHeading(doc, rt.Role, 3)
		addFilledTable(doc, rt.Rows)
		doc.AddParagraph()
	}
	return true
}

// renderInternships writes one three-column table per role, with the
// industries cell split into Small/Medium/Large bullets, then any
// application pipeline advice.
func renderInternships(doc *docx.Docx, content string) bool {
	groups := parse.Internships(content)
	if len(groups) == 0 {
		return false
	}

	for _, group := range groups {
		addHeading(doc, "For "+group.Role+":", 3)
		if len(group.Internships) == 0 {
			continue
		}

		tbl := doc.AddTable(len(group.Internships)+1, 3, tableWidth, nil)
		for idx, header := range []string{"Internship Type", "Industries", "Expected Outcomes"} {
			tbl.TableRows[0].TableCells[idx].AddParagraph().
				AddText(header).Bold().Color(whiteText).Shade("clear", "auto", headerFill)
		}

		for rowIdx, in := range group.Internships {
			fill := ""
			if rowIdx%2 == 0 {
				fill = altRowFill
			}
			row := tbl.TableRows[rowIdx+1]
			shadeText(row.TableCells[0], in.Type, fill)

			var scales []string
			small, medium, large := parse.SplitScales(in.Industries)
			if small != "" {
				scales = append(scales, "Small: "+small)
			}
			if medium != "" {
				scales = append(scales, "Medium: "+medium)
			}
			if large != "" {
				scales = append(scales, "Large: "+large)
			}
			if len(scales) == 0 && in.Industries != "" {
				scales = []string{in.Industries}
			}
			addCellLines(row.TableCells[1], scales, fill)

			shadeText(row.TableCells[2], in.Outcomes, fill)
		}
		doc.AddParagraph()
	}

	if advice := parse.ApplicationPipeline(content); len(advice) > 0 {
		addHeading(doc, "Application Pipeline Advice:", 3)
		for _, line := range advice {
			addBullet(doc, line)
		}
	}
	return true
}

// renderNetworking writes one table per role: a header row and a single
// data row whose cells hold the three bullet lists.
func renderNetworking(doc *docx.Docx, content string) bool {
	roles := parse.Networking(content)
	if len(roles) == 0 {
		return false
	}
	for _, role := range roles {
		addHeading(doc, "For "+role.Role+":", 3)

		tbl := doc.AddTable(2, 3, tableWidth, nil)
		for idx, header := range []string{"Professional Associations", "Industry Events", "Networking Strategy"} {
			tbl.TableRows[0].TableCells[idx].AddParagraph().
				AddText(header).Bold().Color(whiteText).Shade("clear", "auto", headerFill)
		}
		addCellLines(tbl.TableRows[1].TableCells[0], role.Associations, altRowFill)
		addCellLines(tbl.TableRows[1].TableCells[1], role.Events, altRowFill)
		addCellLines(tbl.TableRows[1].TableCells[2], role.Strategy, altRowFill)

		doc.AddParagraph()
	}
	return true
}

func renderProgressMatrix(doc *docx.Docx, content string) bool {
	rows := parse.MatrixRows(content)
	if rows == nil {
		return false
	}
	addFilledTable(doc, rows)
	doc.AddParagraph()
	return true
}

// renderYearPlan writes one table per year in plan order, with the given
// column set. Missing fields render as empty cells.
func renderYearPlan(doc *docx.Docx, content string, columns []string) bool {
	plan := parse.ParseYearPlan(content)
	if len(plan) == 0 {
		return false
	}

	rendered := false
	for _, year := range parse.PlanYears {
		monthRows := plan[year]
		if len(monthRows) == 0 {
			continue
		}
		rendered = true
		addHeading(doc, year, 3)

		rows := [][]string{columns}
		for _, rec := range monthRows {
			row := make([]string, len(columns))
			for i, col := range columns {
				row[i] = strings.TrimSpace(rec[col])
			}
			rows = append(rows, row)
		}
		addFilledTable(doc, rows)
		doc.AddParagraph()
	}
	return rendered
}

// renderRecordTable writes sentinel-block records as one table with the
// given column set.
func renderRecordTable(doc *docx.Docx, content, firstKey string, columns []string) bool {
	records := parse.Records(content, firstKey)
	if len(records) == 0 {
		return false
	}

	rows := [][]string{columns}
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = rec[col]
		}
		rows = append(rows, row)
	}
	addFilledTable(doc, rows)
	doc.AddParagraph()
	return true
}

func shadeText(cell *docx.WTableCell, text, fill string) {
	run := cell.AddParagraph().AddText(text)
	if fill != "" {
		run.Shade("clear", "auto", fill)
	}
}
