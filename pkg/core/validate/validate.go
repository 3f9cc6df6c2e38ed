// Package validate provides content validation for generated report
// sections. These functions are pure and can be called from tests, API
// handlers, or pipeline code without any external dependencies.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"student_portfolio/pkg/core/report"
)

// MinSectionLength is the minimum number of characters (after trimming
// whitespace) a section must contain to be considered substantive.
const MinSectionLength = 100

// healthCategories are the categories every Health Discipline section
// must cover. Matching is case-insensitive substring.
var healthCategories = []string{
	"Food",
	"Sleeping Discipline",
	"Hydration",
	"Lifestyle",
}

// Section checks generated content for a named section and reports any
// issues found. All checks run; issues accumulate rather than
// short-circuiting, so callers see the full picture on a bad section.
func Section(name, content string) report.ValidationResult {
	var issues []string

	// Length is measured in runes so multi-byte scripts are not given a
	// free pass by their encoding.
	trimmed := strings.TrimSpace(content)
	if n := utf8.RuneCountInString(trimmed); n < MinSectionLength {
		issues = append(issues, fmt.Sprintf("Section '%s' is too short (%d chars, minimum %d)", name, n, MinSectionLength))
	}

	if strings.Contains(name, "Health Discipline") {
		issues = append(issues, missingHealthCategories(content)...)
	}

	return report.ValidationResult{
		IsValid:       len(issues) == 0,
		Issues:        issues,
		RequiresRetry: len(issues) > 0,
	}
}

func missingHealthCategories(content string) []string {
	lower := strings.ToLower(content)
	var missing []string
	for _, cat := range healthCategories {
		if !strings.Contains(lower, strings.ToLower(cat)) {
			missing = append(missing, fmt.Sprintf("Health Discipline section is missing mandatory category '%s'", cat))
		}
	}
	return missing
}
