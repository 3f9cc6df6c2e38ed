// Package report defines the shared data model for the report generation
// pipeline: the inbound request, the section plan per report type, and the
// mutable pipeline state that the orchestrator threads through its stages.
package report

// Type selects which section plan and prompt family a request uses.
type Type string

const (
	TypeCareer      Type = "career"
	TypeDevelopment Type = "development"
)

// Valid reports whether t is a known report type.
func (t Type) Valid() bool {
	return t == TypeCareer || t == TypeDevelopment
}

// Label returns the document title prefix used in generated filenames.
func (t Type) Label() string {
	if t == TypeCareer {
		return "Career_Report"
	}
	return "Development_Report"
}

// Title returns the heading printed at the top of the rendered document.
func (t Type) Title() string {
	if t == TypeCareer {
		return "Career Development Report"
	}
	return "Personal Development & Intervention Report"
}

// CareerSections is the fixed section plan for career reports.
var CareerSections = []string{
	"1. Detailed Career Role Breakdown",
	"2. Industry Specific Requirements",
	"3. Emerging Trends and Future Job Prospects",
	"4. Recommended Internships",
	"5. Professional Networking and Industry Associations",
	"6. Guidelines for Progress Monitoring & Support",
}

// DevelopmentSections is the fixed section plan for development reports.
var DevelopmentSections = []string{
	"1. Academic Interventions",
	"2. Non-Academic Interventions",
	"3. Habit Reengineering",
	"4. Physical Grooming",
	"5. Psychological Grooming",
	"6. Suggested Reading",
	"7. Health Discipline",
}

// SectionsFor resolves the section plan for a report type.
func SectionsFor(t Type) []string {
	if t == TypeCareer {
		return CareerSections
	}
	return DevelopmentSections
}

// Inputs is the student profile submitted with a request. Fields mirror the
// intake form; absent values render as "NA" in prompts and summaries.
type Inputs struct {
	StudentName             string             `json:"sname"`
	Standard                string             `json:"standard"`
	Board                   string             `json:"board"`
	HighestSkills           []string           `json:"highest_skills"`
	SkillPercentages        map[string]float64 `json:"skillpercentages"`
	ThinkingPattern         string             `json:"thinking_pattern"`
	AchievementStyle        []string           `json:"achievement_style"`
	AchievementPercentages  map[string]float64 `json:"achievementpercentages"`
	LearningStyle           []string           `json:"learning_communication_style"`
	LearningPercentages     map[string]float64 `json:"learningpercentages"`
	Quotients               []string           `json:"quotients"`
	QuotientPercentages     map[string]float64 `json:"quotientpercentages"`
	PersonalityType         string             `json:"personality_type"`
	CareerRoles             string             `json:"career_roles"`
}

// Empty reports whether no profile data was supplied at all.
func (in Inputs) Empty() bool {
	return in.StudentName == "" && in.CareerRoles == "" &&
		len(in.HighestSkills) == 0 && in.ThinkingPattern == "" &&
		len(in.AchievementStyle) == 0 && len(in.LearningStyle) == 0 &&
		len(in.Quotients) == 0 && in.PersonalityType == ""
}

// Request is an immutable report request.
type Request struct {
	ReportType Type   `json:"report_type"`
	Inputs     Inputs `json:"inputs"`
}

// Section is an accepted, immutable section of the final report.
type Section struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ValidationResult is the outcome of validating one generation attempt.
// It is derived per attempt and never persisted past the decision.
type ValidationResult struct {
	IsValid       bool     `json:"is_valid"`
	Issues        []string `json:"issues"`
	RequiresRetry bool     `json:"requires_retry"`
}

// State is the aggregate pipeline state. It is owned exclusively by the
// pipeline invocation that created it; stages receive it by pointer and
// mutate it in sequence, never concurrently.
type State struct {
	ReportType Type
	Inputs     Inputs

	SectionPlan []string
	Index       int
	RetryCount  int

	CurrentName    string
	CurrentContent string
	Validation     ValidationResult

	Sections    []Section
	FinalReport string
	Err         string
}

// HasSection reports whether a section with the given name was already
// stored. Linear scan: plans are at most 7 sections long.
func (s *State) HasSection(name string) bool {
	for _, sec := range s.Sections {
		if sec.Name == name {
			return true
		}
	}
	return false
}
