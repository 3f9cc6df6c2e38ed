package parse

import "strings"

// PipeRows parses markdown pipe-table lines into cell rows. Separator rows
// (dashes, colons, pipes only) are dropped; cells are trimmed and empty
// cells discarded.
func PipeRows(lines []string) [][]string {
	var rows [][]string
	for _, line := range lines {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		if isSeparatorRow(line) {
			continue
		}
		if cells := splitPipeCells(line); len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rows
}

func splitPipeCells(line string) []string {
	var cells []string
	for _, c := range strings.Split(line, "|") {
		if c = strings.TrimSpace(c); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

func isSeparatorRow(line string) bool {
	if strings.Contains(line, "---") {
		return true
	}
	for _, r := range line {
		if !strings.ContainsRune("|-: ", r) {
			return false
		}
	}
	return true
}

// RoleTable is a pipe table scoped to one career role heading.
type RoleTable struct {
	Role string
	Rows [][]string
}

// TrendTables splits the emerging-trends section into one table per role.
// A short non-table line opens a new role scope; pipe lines under it are
// collected as that role's table.
func TrendTables(content string) []RoleTable {
	var (
		tables  []RoleTable
		current *RoleTable
	)
	flush := func() {
		if current != nil && len(current.Rows) >= 2 {
			tables = append(tables, *current)
		}
		current = nil
	}

	for _, line := range nonEmptyLines(content) {
		switch {
		case strings.HasPrefix(line, "|"):
			if current == nil {
				continue
			}
			if isSeparatorRow(line) {
				continue
			}
			if cells := splitPipeCells(line); len(cells) > 0 {
				current.Rows = append(current.Rows, cells)
			}
		case !strings.HasPrefix(line, "-") && len(line) < 50:
			flush()
			current = &RoleTable{Role: line}
		}
	}
	flush()
	return tables
}

// MatrixRows parses the progress-monitoring comparison table: every pipe
// line in the section belongs to the single horizontal table. Returns nil
// if there is no usable table (fewer than header + 1 data row).
func MatrixRows(content string) [][]string {
	rows := PipeRows(nonEmptyLines(content))
	if len(rows) < 2 {
		return nil
	}
	return rows
}

// Internship is one internship recommendation row.
type Internship struct {
	Type       string
	Industries string
	Outcomes   string
}

// RoleInternships groups internship rows under a role heading.
type RoleInternships struct {
	Role        string
	Internships []Internship
}

// Internships parses the recommended-internships section: "For <Role>:"
// headings followed by pipe tables. Header and separator rows are skipped
// so they never leak into the rendered tables.
func Internships(content string) []RoleInternships {
	var (
		groups  []RoleInternships
		current *RoleInternships
	)
	flush := func() {
		if current != nil {
			groups = append(groups, *current)
		}
		current = nil
	}

	for _, line := range nonEmptyLines(content) {
		if role, ok := roleHeading(line); ok {
			flush()
			current = &RoleInternships{Role: role}
			continue
		}
		if current == nil || !strings.HasPrefix(line, "|") {
			continue
		}
		if isSeparatorRow(line) {
			continue
		}
		cells := splitPipeCells(line)
		if len(cells) < 3 {
			continue
		}
		if strings.Contains(cells[0], "Internship Type") || strings.Contains(cells[0], "Industries") {
			continue
		}
		current.Internships = append(current.Internships, Internship{
			Type:       cells[0],
			Industries: cells[1],
			Outcomes:   cells[2],
		})
	}
	flush()
	return groups
}

// SplitScales splits an industries cell into its Small/Medium/Large parts.
// Missing scales come back empty.
func SplitScales(industries string) (small, medium, large string) {
	cut := func(s, marker, until string) string {
		start := strings.Index(s, marker)
		if start < 0 {
			return ""
		}
		rest := s[start+len(marker):]
		if until != "" {
			if end := strings.Index(rest, until); end >= 0 {
				rest = rest[:end]
			}
		}
		return strings.TrimSpace(rest)
	}

	small = cut(industries, "Small:", "Medium:")
	if small == "" {
		small = cut(industries, "Small:", "Large:")
	}
	medium = cut(industries, "Medium:", "Large:")
	large = cut(industries, "Large:", "")
	return small, medium, large
}

// ApplicationPipeline returns the advice lines that follow an
// "Application Pipeline" marker, skipping role headings and table rows.
func ApplicationPipeline(content string) []string {
	lines := nonEmptyLines(content)
	start := -1
	for i, line := range lines {
		if strings.Contains(line, "Application Pipeline") {
			start = i
			break
		}
	}
	if start <= 0 {
		return nil
	}

	var advice []string
	for _, line := range lines[start:] {
		if strings.HasPrefix(line, "For ") || strings.HasPrefix(line, "|") {
			continue
		}
		advice = append(advice, strings.TrimPrefix(line, "- "))
	}
	return advice
}
