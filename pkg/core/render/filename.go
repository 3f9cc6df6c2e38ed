package render

import (
	"fmt"
	"regexp"

	"student_portfolio/pkg/core/report"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SanitizeFilename replaces every character outside [a-zA-Z0-9_-] with an
// underscore. Runs are not collapsed, so the mapping is stable and
// idempotent.
func SanitizeFilename(text string) string {
	return unsafeFilenameChars.ReplaceAllString(text, "_")
}

// Filename derives the document filename from the report type and the
// student's profile. Same inputs always produce the same name; a repeat
// generation overwrites the previous file.
func Filename(t report.Type, in report.Inputs) string {
	return fmt.Sprintf("%s_%s_%s.docx", t.Label(), SanitizeFilename(in.StudentName), SanitizeFilename(in.CareerRoles))
}
