package parse

import (
	"reflect"
	"testing"
)

func TestRoleProfiles(t *testing.T) {
	content := `
Career Role: Data Scientist
Technical Skills: Python, SQL, Machine Learning
Soft Skills: Communication, Curiosity
Salary Range: 8-25 LPA

Career Role: Product Manager
Technical Skills: Analytics, Roadmapping
Career Progression: Associate PM -> PM -> Senior PM
`
	profiles := RoleProfiles(content)
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].Role != "Data Scientist" {
		t.Errorf("unexpected role: %q", profiles[0].Role)
	}
	if len(profiles[0].Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(profiles[0].Fields))
	}
	// Field order must follow source order for the aspect/detail tables.
	if profiles[0].Fields[0].Key != "Technical Skills" || profiles[0].Fields[2].Key != "Salary Range" {
		t.Errorf("field order not preserved: %+v", profiles[0].Fields)
	}
	if profiles[1].Fields[1].Value != "Associate PM -> PM -> Senior PM" {
		t.Errorf("value with separators mangled: %q", profiles[1].Fields[1].Value)
	}
}

func TestRoleProfilesIgnoresPreamble(t *testing.T) {
	content := `
Here is the breakdown you asked for:
Some note: not attached to any role
Career Role: Architect
Salary Range: 6-20 LPA
`
	profiles := RoleProfiles(content)
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	if len(profiles[0].Fields) != 1 {
		t.Errorf("preamble lines must not attach to a role: %+v", profiles[0].Fields)
	}
}

func TestRecordsBooks(t *testing.T) {
	content := `
- Book Name: Deep Work
  Author: Cal Newport
  Publication: Grand Central Publishing
  Availability in India: Available on Amazon India
  Why Should This Book Be Read?: Builds focus habits for technical careers.

- Book Name: Atomic Habits
  Author: James Clear
Year 1: read first
  Publication: Penguin
`
	records := Records(content, "Book Name")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["Author"] != "Cal Newport" {
		t.Errorf("unexpected author: %q", records[0]["Author"])
	}
	if records[0]["Why Should This Book Be Read?"] != "Builds focus habits for technical careers." {
		t.Errorf("question-mark key mishandled: %+v", records[0])
	}
	if _, ok := records[1]["Year 1"]; ok {
		t.Error("year markers must not become record fields")
	}
	if records[1]["Publication"] != "Penguin" {
		t.Errorf("fields after a skipped line lost: %+v", records[1])
	}
}

func TestRecordsHealthCategories(t *testing.T) {
	content := `
- Category: Food
  Recommendation: Include seasonal fruits with breakfast
  Benefits for Mental Health: Steadier mood through the day
  Benefits for Physical Health: Better micronutrient coverage
- Category: Hydration
  Recommendation: 8 glasses of water daily
`
	records := Records(content, "Category")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["Category"] != "Food" || records[1]["Category"] != "Hydration" {
		t.Errorf("unexpected categories: %+v", records)
	}
}

func TestPipeRowsDropsSeparators(t *testing.T) {
	lines := []string{
		"| Aspect | Data Scientist | Product Manager |",
		"|--------|----------------|-----------------|",
		"| KPIs | Model accuracy | Feature adoption |",
		"| :---: | :--- | ---: |",
		"| Mentorship | Kaggle communities | PM guilds |",
	}
	rows := PipeRows(lines)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows after dropping separators, got %d: %v", len(rows), rows)
	}
	want := []string{"KPIs", "Model accuracy", "Feature adoption"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("unexpected row: %v", rows[1])
	}
}

func TestTrendTablesPerRole(t *testing.T) {
	content := `
Data Scientist
| Past Trend (Previous 3 Years) | Present Trend (Current Year) | Future Prediction (Next 3 Years) |
| --- | --- | --- |
| Strong growth in demand | AI tooling mainstream | Continued double-digit growth |
| Salaries rising steadily | 12-30 LPA typical | Premium for ML ops skills |

Product Manager
| Past Trend (Previous 3 Years) | Present Trend (Current Year) | Future Prediction (Next 3 Years) |
| Steady demand | Platform PM roles growing | AI product specialization |
`
	tables := TrendTables(content)
	if len(tables) != 2 {
		t.Fatalf("expected 2 role tables, got %d", len(tables))
	}
	if tables[0].Role != "Data Scientist" {
		t.Errorf("unexpected role: %q", tables[0].Role)
	}
	if len(tables[0].Rows) != 3 {
		t.Errorf("expected header + 2 data rows, got %d", len(tables[0].Rows))
	}
	if len(tables[1].Rows) != 2 {
		t.Errorf("expected header + 1 data row, got %d", len(tables[1].Rows))
	}
}

func TestTrendTablesDropsSingleRowTable(t *testing.T) {
	content := `
Architect
| Header A | Header B | Header C |
`
	if tables := TrendTables(content); tables != nil {
		t.Errorf("header-only table must be dropped, got %v", tables)
	}
}

func TestInternshipsSkipsHeaderAndSeparatorRows(t *testing.T) {
	content := `
For Data Scientist:
| Internship Type | Industries | Expected Outcomes |
| --- | --- | --- |
| Research Internship | Small: startups Medium: analytics firms Large: tech MNCs | Modeling experience, publications |
| Analytics Internship | Small: local firms Medium: consultancies Large: banks | Dashboarding, stakeholder exposure |

Application Pipeline Advice:
- Apply 3 months before summer break
- Use Internshala and LinkedIn
`
	groups := Internships(content)
	if len(groups) != 1 {
		t.Fatalf("expected 1 role group, got %d", len(groups))
	}
	if len(groups[0].Internships) != 2 {
		t.Fatalf("header/separator rows leaked: %+v", groups[0].Internships)
	}
	if groups[0].Internships[0].Type != "Research Internship" {
		t.Errorf("unexpected type: %q", groups[0].Internships[0].Type)
	}

	advice := ApplicationPipeline(content)
	if len(advice) < 2 {
		t.Fatalf("expected pipeline advice lines, got %v", advice)
	}
	if advice[len(advice)-1] != "Use Internshala and LinkedIn" {
		t.Errorf("bullet prefix not stripped: %q", advice[len(advice)-1])
	}
}

func TestSplitScales(t *testing.T) {
	small, medium, large := SplitScales("Small: startups Medium: analytics firms Large: tech MNCs")
	if small != "startups" || medium != "analytics firms" || large != "tech MNCs" {
		t.Errorf("got %q / %q / %q", small, medium, large)
	}

	small, medium, large = SplitScales("Small: boutiques Large: enterprises")
	if small != "boutiques" || medium != "" || large != "enterprises" {
		t.Errorf("missing-scale handling wrong: %q / %q / %q", small, medium, large)
	}

	small, medium, large = SplitScales("no scales here")
	if small != "" || medium != "" || large != "" {
		t.Errorf("expected all empty, got %q / %q / %q", small, medium, large)
	}
}

func TestNetworking(t *testing.T) {
	content := `
For Data Scientist:

Professional Associations:
- Analytics Society of India
- ACM India

Industry Events:
- Cypher Analytics Summit
- PyData meetups

Networking Strategy:
- Publish learning notes on LinkedIn
- Attend one meetup per month

For Product Manager:

Professional Associations:
- Product Management Festival community
`
	roles := Networking(content)
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}
	ds := roles[0]
	if len(ds.Associations) != 2 || len(ds.Events) != 2 || len(ds.Strategy) != 2 {
		t.Errorf("unexpected list sizes: %+v", ds)
	}
	if ds.Events[1] != "PyData meetups" {
		t.Errorf("unexpected event: %q", ds.Events[1])
	}
	if len(roles[1].Associations) != 1 {
		t.Errorf("last role's lists lost: %+v", roles[1])
	}
}

func TestIndustryRequirements(t *testing.T) {
	content := `
For Data Scientist:

Beginner Level:
- Certification Name: Google Data Analytics
- Application Process: Enroll via Coursera
- Duration: 6 months
- Assistance Resources: Coursera forums

Advanced Level:
- Certification Name: AWS ML Specialty
- Duration: 3 months of prep
`
	roles := IndustryRequirements(content)
	if len(roles) != 1 {
		t.Fatalf("expected 1 role, got %d", len(roles))
	}
	if len(roles[0].Levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(roles[0].Levels))
	}
	beginner := roles[0].Levels[0]
	if beginner.Name != "Beginner Level" {
		t.Errorf("unexpected level name: %q", beginner.Name)
	}
	if len(beginner.Items) != 4 {
		t.Errorf("expected 4 detail items, got %v", beginner.Items)
	}
	if beginner.Items[0] != "Certification Name: Google Data Analytics" {
		t.Errorf("unexpected item: %q", beginner.Items[0])
	}
}
