package parse

import "strings"

// PlanYears is the order year blocks are rendered in.
var PlanYears = []string{"Year 1", "Year 2", "Year 3"}

// planFieldNames maps lowercase field labels to their canonical form.
// Models drift between "Action plan:" and "Action Plan:"; anything not in
// this whitelist is dropped.
var planFieldNames = map[string]string{
	"activity":                           "Activity",
	"action plan":                        "Action Plan",
	"technical skills":                   "Technical Skills",
	"soft skills":                        "Soft Skills",
	"learning material":                  "Learning Material",
	"objective":                          "Objective",
	"learning outcome":                   "Learning Outcome",
	"learning outcomes":                  "Learning Outcomes",
	"habits to develop":                  "Habits to Develop",
	"physical & mental skills developed": "Physical & Mental Skills Developed",
	"psychological skills developed":     "Psychological Skills Developed",
}

// YearPlan maps "Year N" to its month rows in source order.
type YearPlan map[string][]Record

// ParseYearPlan parses the year/month grammar shared by the intervention
// and grooming sections:
//
//	Year 1:
//	- Month: January
//	 Activity: ...
//	 Objective: ...
//
// A "Year N:" line opens a year scope, a "Month:" line opens a row, and
// labeled lines fill the open row. Field labels are normalized against the
// whitelist; rows outside a year scope are discarded.
func ParseYearPlan(content string) YearPlan {
	plan := YearPlan{}
	var (
		currentYear string
		currentRow  Record
	)
	flushRow := func() {
		if currentYear != "" && currentRow != nil {
			plan[currentYear] = append(plan[currentYear], currentRow)
		}
		currentRow = nil
	}

	for _, line := range nonEmptyLines(content) {
		if strings.HasPrefix(line, "Year ") && strings.HasSuffix(line, ":") {
			flushRow()
			currentYear = strings.TrimSuffix(line, ":")
			if _, ok := plan[currentYear]; !ok {
				plan[currentYear] = nil
			}
			continue
		}

		if strings.Contains(line, "Month:") {
			flushRow()
			if currentYear == "" {
				continue
			}
			month := strings.ReplaceAll(line, "- Month:", "")
			month = strings.ReplaceAll(month, "Month:", "")
			currentRow = Record{"Month": strings.TrimSpace(month)}
			continue
		}

		if currentYear == "" || currentRow == nil {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(key), "-"))
		value = strings.TrimSpace(value)

		if canonical, ok := planFieldNames[strings.ToLower(key)]; ok && value != "" {
			currentRow[canonical] = value
		}
	}
	flushRow()
	return plan
}
