package prompt

import (
	"fmt"
	"sort"
	"strings"

	"student_portfolio/pkg/core/report"
)

// DefaultSystemPrompt is the persona sent with every generation call.
const DefaultSystemPrompt = "You are academic and career expert having more than 35 years of experience " +
	"with deep knowledge in psychology, career development, and personalized education planning. " +
	"You MUST strictly follow the career roles provided by the student. " +
	"Do NOT suggest different roles. Do NOT talk about generic or unspecified roles. " +
	"You must not use emojis or decorative symbols like * or # in the content."

// skillGuidance maps each assessed skill to concrete action-plan guidance.
var skillGuidance = map[string]string{
	"Strategy":     "Prioritize planning, frameworks, option analysis, roadmaps, and decision memos. Provide clear goals, assumptions, risks, and trade-offs.",
	"Execution":    "Prioritize weekly schedules, checklists, sprint plans, deliverables, accountability, and measurable outputs.",
	"Intellect":    "Prioritize deep learning plans, conceptual clarity, problem-solving drills, and structured study methods.",
	"Asthetic":     "Prioritize portfolio presentation, design taste, storytelling, and improvement loops via feedback and iterations.",
	"Balance":      "Prioritize time-blocking, burnout prevention, sustainable habits, and realistic pacing with recovery routines.",
	"Movement":     "Prioritize activity-based learning, practice-first tasks, daily reps, and performance routines.",
	"Expression":   "Prioritize communication deliverables: presentations, writing, speaking practice, pitch decks, and content creation plans.",
	"Articulation": "Prioritize structured writing, clarity, argument building, and explanation skill. Add rubrics and review checklists.",
	"Observation":  "Prioritize research, analysis, pattern recognition, journaling, case studies, and structured reflection.",
	"Ecological":   "Prioritize systems thinking, context awareness, collaboration, stakeholder mapping, and environment/industry scanning.",
}

// SystemPrompt returns the system instruction, preferring a loaded template.
func SystemPrompt() string {
	if pt, err := Get().GetPrompt("report.system"); err == nil && pt.SystemPrompt != "" {
		return pt.SystemPrompt
	}
	return DefaultSystemPrompt
}

// FormatSkillsWithPercentages renders "Strategy (14%), Observation (10%)".
// Skills without a recorded percentage appear bare; an empty list is "NA".
func FormatSkillsWithPercentages(skills []string, percentages map[string]float64) string {
	if len(skills) == 0 {
		return "NA"
	}

	formatted := make([]string, 0, len(skills))
	for _, skill := range skills {
		if pct, ok := percentages[skill]; ok && pct != 0 {
			formatted = append(formatted, fmt.Sprintf("%s (%g%%)", skill, pct))
		} else {
			formatted = append(formatted, skill)
		}
	}
	return strings.Join(formatted, ", ")
}

// BuildSkillActionGuidance converts the student's highest skills into
// prioritized guidance lines, highest percentage first.
func BuildSkillActionGuidance(highestSkills []string, percentages map[string]float64) string {
	sorted := append([]string(nil), highestSkills...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return percentages[sorted[i]] > percentages[sorted[j]]
	})

	lines := []string{"SKILL PRIORITIZATION (ordered by percentage - focus MORE on higher percentages):"}
	for _, s := range sorted {
		if guidance, ok := skillGuidance[s]; ok {
			lines = append(lines, fmt.Sprintf("- %s (%g%%): %s", s, percentages[s], guidance))
		}
	}

	if len(lines) == 1 {
		return "- No dominant skill guidance available; still provide an actionable plan with timelines and measurable checkpoints."
	}

	lines = append(lines, "\nIMPORTANT: Weight your recommendations based on these percentages. Higher percentage skills should get MORE action items and emphasis.")
	return strings.Join(lines, "\n")
}

// basePrompt composes the student-profile block and the output rules shared
// by every section of a report.
func basePrompt(in report.Inputs) string {
	orNA := func(s string) string {
		if s == "" {
			return "NA"
		}
		return s
	}

	var b strings.Builder
	b.WriteString("Based on the following student profile information, you will write ONLY ONE ")
	b.WriteString("of the requested sections of the report each time. ")
	b.WriteString("Do not repeat the input data in the output.\n\n")
	b.WriteString("INPUT DATA:\n")
	fmt.Fprintf(&b, "- Standard / Year: %s\n", orNA(in.Standard))
	fmt.Fprintf(&b, "- Board: %s\n", orNA(in.Board))
	fmt.Fprintf(&b, "- Highest Skills with Percentages: %s\n", FormatSkillsWithPercentages(in.HighestSkills, in.SkillPercentages))
	fmt.Fprintf(&b, "- Thinking Pattern: %s\n", orNA(in.ThinkingPattern))
	fmt.Fprintf(&b, "- Achievement Style with Percentages: %s\n", FormatSkillsWithPercentages(in.AchievementStyle, in.AchievementPercentages))
	fmt.Fprintf(&b, "- Learning Communication Style with Percentages: %s\n", FormatSkillsWithPercentages(in.LearningStyle, in.LearningPercentages))
	fmt.Fprintf(&b, "- Quotients with Percentages: %s\n", FormatSkillsWithPercentages(in.Quotients, in.QuotientPercentages))
	fmt.Fprintf(&b, "- Personality Type: %s\n", orNA(in.PersonalityType))
	fmt.Fprintf(&b, "- Suggested Career Roles: %s\n\n", orNA(in.CareerRoles))

	b.WriteString("CRITICAL AGE/LEVEL ADAPTATION RULE:\n")
	b.WriteString("You MUST adapt all advice to the student's Standard/Year.\n")
	b.WriteString("- If the student is in school (e.g., 6th-12th): focus on school-level actions, subject foundations, study routines, age-appropriate internships/projects, and parent/teacher support.\n")
	b.WriteString("- If the student is in college (e.g., FY/SY/TY/1st-4th year): focus on industry readiness, internships, projects, networking, resume/portfolio, and placement preparation.\n\n")

	b.WriteString("CRITICAL INSTRUCTION - CAREER ROLE FOCUS:\n")
	fmt.Fprintf(&b, "YOU MUST USE THE EXACT CAREER ROLES ENTERED BY THE STUDENT: %s\n", orNA(in.CareerRoles))
	b.WriteString("DO NOT CHANGE OR SUGGEST DIFFERENT ROLES.\n")
	b.WriteString("The ENTIRE report must be centered around THESE EXACT ROLES ONLY.\n")
	b.WriteString("If multiple roles are mentioned, address ALL roles and create separate subsections for each role where appropriate.\n")
	b.WriteString("Do NOT provide generic career advice. Do NOT suggest alternative roles.\n\n")

	b.WriteString(BuildSkillActionGuidance(in.HighestSkills, in.SkillPercentages))
	b.WriteString("\n\n")

	b.WriteString("BOARD CONTEXT RULE:\n")
	b.WriteString("Adapt learning methods, practice strategies, and assessment style to the student's academic Board (CBSE, ICSE, State Board, IB/Cambridge). Keep recommendations practical and appropriate to the board.\n\n")

	b.WriteString("NON-NEGOTIABLE OUTPUT RULES:\n")
	b.WriteString("- BE CONCISE AND DIRECT. NO lengthy explanations or verbose paragraphs.\n")
	b.WriteString("- Use BULLET POINTS for all lists and action items.\n")
	b.WriteString("- Each bullet should be 1-2 lines maximum.\n")
	b.WriteString("- NO introductory or concluding paragraphs.\n")
	b.WriteString("- TOTAL section length: 200-350 words maximum.\n")
	b.WriteString("- Do NOT use emojis or decorative symbols like * or #.\n")
	b.WriteString("- Format with clear subheadings for each role if multiple roles exist.\n\n")

	b.WriteString("FORMAT REQUIREMENTS:\n")
	b.WriteString("- First line must be the exact section heading.\n")
	b.WriteString("- Organize content with concise subheadings.\n")
	b.WriteString("- Use bullet points starting with '- ' for all lists.\n")
	b.WriteString("- Keep explanations minimal - focus on facts and action items.\n\n")

	return b.String()
}

// SectionPrompt builds the full user prompt for one section of a report.
// index must be within the section plan for the report type.
func SectionPrompt(t report.Type, in report.Inputs, index int) (string, error) {
	plan := report.SectionsFor(t)
	if index < 0 || index >= len(plan) {
		return "", fmt.Errorf("section index %d out of range for %s report (%d sections)", index, t, len(plan))
	}

	section := plan[index]
	return basePrompt(in) +
		BlueprintFor(t, section) + "\n" +
		"WRITE ONLY THE FOLLOWING SECTION, using the exact heading text as the first line:\n" +
		section + "\n", nil
}

// BlueprintFor returns the section-specific output requirements, preferring
// a loaded template over the hardcoded fallback.
func BlueprintFor(t report.Type, section string) string {
	id := string(t) + "." + slug(section)
	if pt, err := Get().GetPrompt(id); err == nil && pt.Blueprint != "" {
		return pt.Blueprint
	}
	if bp, ok := fallbackBlueprints[section]; ok {
		return bp
	}
	return "Include section-specific actionable steps aligned to the heading."
}

// slug turns "1. Detailed Career Role Breakdown" into
// "detailed_career_role_breakdown" for registry lookups.
func slug(section string) string {
	s := strings.ToLower(section)
	if i := strings.Index(s, ". "); i >= 0 && i <= 2 {
		s = s[i+2:]
	}
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
