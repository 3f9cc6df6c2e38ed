package parse

import "strings"

// NetworkingRole holds one role's three networking lists.
type NetworkingRole struct {
	Role         string
	Associations []string
	Events       []string
	Strategy     []string
}

// Networking parses the networking section: "For <Role>:" headings, each
// followed by Professional Associations / Industry Events / Networking
// Strategy lists of "- " bullets.
func Networking(content string) []NetworkingRole {
	var (
		roles   []NetworkingRole
		current *NetworkingRole
		list    *[]string
	)
	flush := func() {
		if current != nil {
			roles = append(roles, *current)
		}
		current = nil
		list = nil
	}

	for _, line := range nonEmptyLines(content) {
		if role, ok := roleHeading(line); ok {
			flush()
			current = &NetworkingRole{Role: role}
			continue
		}
		if current == nil {
			continue
		}
		switch {
		case strings.Contains(line, "Professional Associations:"):
			list = &current.Associations
		case strings.Contains(line, "Industry Events:"):
			list = &current.Events
		case strings.Contains(line, "Networking Strategy:"):
			list = &current.Strategy
		case strings.HasPrefix(line, "- ") && list != nil:
			*list = append(*list, strings.TrimPrefix(line, "- "))
		}
	}
	flush()
	return roles
}

// CertLevel is one certification level's labeled detail lines.
type CertLevel struct {
	Name  string
	Items []string
}

// IndustryRole holds one role's certification requirements grouped by
// level, plus any stray bullet lines outside a level.
type IndustryRole struct {
	Role   string
	Levels []CertLevel
	Extra  []string
}

// certDetailLabels are the lines kept under a certification level.
var certDetailLabels = []string{
	"Certification Name:",
	"Application Process:",
	"Duration:",
	"Assistance Resources:",
}

// IndustryRequirements parses the industry-requirements section:
// "For <Role>:" headings, "<Name> Level:" subheadings, and labeled detail
// lines under each level.
func IndustryRequirements(content string) []IndustryRole {
	var (
		roles   []IndustryRole
		current *IndustryRole
		level   *CertLevel
	)
	flushLevel := func() {
		if current != nil && level != nil {
			current.Levels = append(current.Levels, *level)
		}
		level = nil
	}
	flushRole := func() {
		flushLevel()
		if current != nil {
			roles = append(roles, *current)
		}
		current = nil
	}

	for _, line := range nonEmptyLines(content) {
		if role, ok := roleHeading(line); ok {
			flushRole()
			current = &IndustryRole{Role: role}
			continue
		}
		if current == nil {
			continue
		}
		switch {
		case strings.Contains(line, "Level:"):
			flushLevel()
			name, _, _ := strings.Cut(line, ":")
			level = &CertLevel{Name: strings.TrimSpace(name)}
		case isCertDetail(line):
			key, value, _ := strings.Cut(line, ":")
			item := strings.TrimSpace(key) + ": " + strings.TrimSpace(value)
			if level != nil {
				level.Items = append(level.Items, item)
			} else {
				current.Extra = append(current.Extra, item)
			}
		case strings.HasPrefix(line, "- "):
			item := strings.TrimPrefix(line, "- ")
			if level != nil {
				level.Items = append(level.Items, item)
			} else {
				current.Extra = append(current.Extra, item)
			}
		}
	}
	flushRole()
	return roles
}

func isCertDetail(line string) bool {
	trimmed := strings.TrimPrefix(line, "- ")
	for _, label := range certDetailLabels {
		if strings.HasPrefix(trimmed, label) {
			return true
		}
	}
	return false
}
