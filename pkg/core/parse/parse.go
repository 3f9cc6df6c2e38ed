// Package parse extracts structured records from accepted section text.
// Each section family has its own line grammar: sentinel key-value blocks,
// year/month plans, pipe tables, and role-scoped lists. Parsers are pure
// and tolerant: unrecognized lines are skipped, never fatal.
package parse

import "strings"

// nonEmptyLines splits content into trimmed, non-empty lines.
func nonEmptyLines(content string) []string {
	var lines []string
	for _, raw := range strings.Split(content, "\n") {
		if l := strings.TrimSpace(raw); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Record is one parsed row, keyed by field label.
type Record map[string]string

// Field is a single labeled value. Used where field order matters.
type Field struct {
	Key   string
	Value string
}

// RoleProfile is one career role's aspect/detail breakdown.
type RoleProfile struct {
	Role   string
	Fields []Field
}

// RoleProfiles parses "Career Role:" sentinel blocks. Each block starts at
// a "Career Role:" line; every following "Key: Value" line belongs to that
// role until the next sentinel. Field order is preserved for rendering.
func RoleProfiles(content string) []RoleProfile {
	var (
		profiles []RoleProfile
		current  *RoleProfile
	)

	for _, line := range nonEmptyLines(content) {
		if strings.HasPrefix(line, "Career Role:") {
			if current != nil && len(current.Fields) > 0 {
				profiles = append(profiles, *current)
			}
			current = &RoleProfile{Role: strings.TrimSpace(strings.TrimPrefix(line, "Career Role:"))}
			continue
		}
		if current == nil {
			continue
		}
		if key, value, ok := strings.Cut(line, ":"); ok {
			current.Fields = append(current.Fields, Field{
				Key:   strings.TrimSpace(key),
				Value: strings.TrimSpace(value),
			})
		}
	}
	if current != nil && len(current.Fields) > 0 {
		profiles = append(profiles, *current)
	}
	return profiles
}

// Records parses blocks introduced by a "- <firstKey>:" sentinel line, e.g.
// "- Book Name:" or "- Category:". Subsequent "Key: Value" lines attach to
// the open record until the next sentinel.
func Records(content, firstKey string) []Record {
	sentinel := "- " + firstKey + ":"
	var (
		records []Record
		current Record
	)

	for _, line := range nonEmptyLines(content) {
		if strings.HasPrefix(line, sentinel) {
			if current != nil {
				records = append(records, current)
			}
			current = Record{firstKey: strings.TrimSpace(strings.TrimPrefix(line, sentinel))}
			continue
		}
		if current == nil {
			continue
		}
		// Year markers inside reading schedules are not record fields.
		if strings.HasPrefix(line, "Year ") {
			continue
		}
		if key, value, ok := strings.Cut(line, ":"); ok {
			current[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	if current != nil {
		records = append(records, current)
	}
	return records
}

// roleHeading extracts the role name from a "For <Role>:" heading line,
// or returns false when the line is not one.
func roleHeading(line string) (string, bool) {
	if !strings.HasPrefix(line, "For ") || !strings.Contains(line, ":") {
		return "", false
	}
	role := strings.TrimPrefix(line, "For ")
	role = strings.ReplaceAll(role, ":", "")
	return strings.TrimSpace(role), true
}
