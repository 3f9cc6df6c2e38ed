package prompt

// fallbackBlueprints carries the section-specific output requirements used
// when no template is loaded from resources/. The field labels and layout
// here are a contract with pkg/core/parse; changing a label breaks table
// extraction for that section.
var fallbackBlueprints = map[string]string{
	"1. Detailed Career Role Breakdown": `SECTION-SPECIFIC REQUIREMENTS - OUTPUT STRUCTURED FORMAT (NOT MARKDOWN TABLE):

For EACH entered career role, output in this EXACT format (one role per block):

Career Role: [Role Name]
Technical Skills: [comma-separated list]
Soft Skills: [comma-separated list]
Undergraduate Education: [degree name]
Postgraduate Education: [degree name]
Micro-degrees: [comma-separated certifications]
Certifications: [comma-separated list]
Career Progression: [progression path with arrows]
Salary Range: [amount and currency]
Day-to-Day Responsibilities: [comma-separated list]

[Leave blank line between roles]

DO NOT CREATE MARKDOWN TABLES. DO NOT USE PIPES |
Each field on its own line with label: value format.
`,

	"2. Industry Specific Requirements": `SECTION-SPECIFIC REQUIREMENTS:
- For EACH career role, organize requirements in BEGINNER -> ADVANCED progression
- Structure for each role:
  For [Career Role Name]:

  Beginner Level:
  - Certification Name: [Name]
  - Application Process: Step-by-step how to apply
  - Duration: Time to complete (e.g., 3 months, 6 weeks)
  - Assistance Resources: Where to get help

  Intermediate Level:
  [same format]

  Advanced Level:
  [same format]
- Include registration links, prerequisites, exam format, study resources, cost where applicable
- Be SPECIFIC and ACTIONABLE
`,

	"3. Emerging Trends and Future Job Prospects": `SECTION-SPECIFIC REQUIREMENTS:
- Determine the CURRENT YEAR dynamically at generation time.
- Past Trend: previous 3 completed years. Present Trend: current year. Future Prediction: next 3 years.
- For EACH career role, create a separate subsection with a clear heading line naming the role, then a TABLE with columns:
  Past Trend (Previous 3 Years) | Present Trend (Current Year) | Future Prediction (Next 3 Years)
- Rows should cover: Job Demand Growth, Average Salary Trends, Key Technologies / Skills, Industry Adoption Rate, Geographic Demand
- Use realistic, conservative estimates; approximate ranges when exact figures are unavailable. Do NOT fabricate precise statistics.
`,

	"4. Recommended Internships": `SECTION-SPECIFIC REQUIREMENTS:
- Organize by CAREER ROLE with clear role headings:
  For [Career Role Name]:
- For each role, provide a TABLE with columns: Internship Type | Industries (Small/Medium/Large) | Expected Outcomes
- Industries cell must list scales inline: Small: [2-3 types] Medium: [2-3 types] Large: [2-3 types]
- Expected Outcomes: 3-4 key learning outcomes per internship type
- Provide 5-8 internship types per role; use meaningful internship type names, never 'Point 1'
- Include Application Pipeline advice at the end (strategy, platforms, timing)
`,

	"5. Professional Networking and Industry Associations": `SECTION-SPECIFIC REQUIREMENTS - OUTPUT STRUCTURED FORMAT (NOT MARKDOWN TABLE):

For EACH entered career role, output in this EXACT format:

For [Career Role Name]:

Professional Associations:
- [Association 1]
- [Association 2]
- [Association 3]

Industry Events:
- [Event/Conference 1]
- [Event/Conference 2]
- [Event/Conference 3]

Networking Strategy:
- [Strategy 1]
- [Strategy 2]
- [Strategy 3]

[Leave blank line between roles]

DO NOT CREATE MARKDOWN TABLES. DO NOT USE PIPES |
Use bullet points (- ) for each item; at least 5 items per list.
`,

	"6. Guidelines for Progress Monitoring & Support": `SECTION-SPECIFIC REQUIREMENTS:
- Create a HORIZONTAL comparison table:
  | Aspect | [Career Role 1] | [Career Role 2] | ... |
- Rows (Aspects): Strategy, Observation, Balance, Intellect, Expression, Execution, KPIs, Mentorship, Self-Assessment, Feedback Loops
- Keep each cell concise but actionable (2-3 sentences max)
`,

	"1. Academic Interventions": `SECTION-SPECIFIC REQUIREMENTS - OUTPUT STRUCTURED FORMAT (NOT MARKDOWN TABLE):

Create a 3-year academic intervention plan WITH CONTENT FOR EVERY SINGLE MONTH (all 12 months each year).
You MUST output in this EXACT structure so it can be converted to Word tables:

Year 1:
- Month: January
 Activity: [what needs to be done]
 Technical Skills: [comma-separated skills]
 Soft Skills: [comma-separated skills]
 Learning Material: [courses, books, platforms]
 Objective: [1-2 line objective]

[Repeat for February through December]

Year 2:
[Repeat EXACT same month-by-month structure with different content]

Year 3:
[Repeat EXACT same month-by-month structure with different content]

CRITICAL RULES:
- ALL 12 months for each year.
- Use only the labels: Month, Activity, Technical Skills, Soft Skills, Learning Material, Objective.
- DO NOT use markdown tables. DO NOT use pipes |.
- Make each month's content UNIQUE and PROGRESSIVE through the year.
`,

	"2. Non-Academic Interventions": `SECTION-SPECIFIC REQUIREMENTS - OUTPUT STRUCTURED FORMAT (NOT MARKDOWN TABLE):

Create a 3-year NON-ACADEMIC intervention plan focused on personality development, life skills, social intelligence, emotional maturity, discipline, ethics, health, and real-world adaptability. No academic subjects, exams, degrees, or classroom-style learning.

Year 1:
- Month: January
 Activity: [non-academic activity focused on behavior, exposure, or life skill development]
 Technical Skills: [practical real-world skills - comma-separated]
 Soft Skills: [behavioral and psychological skills - comma-separated]
 Learning Outcome: [capability or behavior change the student will develop]
 Objective: [1-2 lines explaining the developmental gap addressed]

[Repeat for February through December]

Year 2 / Year 3: repeat the EXACT same structure with ALL 12 months and progressively more demanding content.

CRITICAL RULES:
- EACH MONTH MUST include ALL FIVE fields: Activity, Technical Skills, Soft Skills, Learning Outcome, Objective.
- Use the field name EXACTLY as 'Learning Outcome'.
- Plain text only, no markdown tables, no pipes.
`,

	"3. Habit Reengineering": `SECTION-SPECIFIC REQUIREMENTS - OUTPUT STRUCTURED FORMAT (NOT MARKDOWN TABLE):

Design a 3-year habit reengineering plan building consistency, discipline, self-regulation, and learning habits through small repeatable actions. Output AT LEAST 6-7 months per year, spread across the year (not consecutive).

Year 1:
- Month: January
 Activity: [specific habit-building activity or routine]
 Action Plan: [detailed steps to perform the activity]
 Objective: [clear purpose of this habit in 1-2 lines]
 Habits to Develop: [comma-separated daily or weekly habits]
 Soft Skills: [comma-separated behavioral or personal skills]
 Learning Outcomes: [observable outcomes or behavioral improvements]

[Further months, e.g. March, June, September, November, December]

Year 2 / Year 3: repeat the same structure with progressive content.

RULES:
- Use EXACT field names: Month, Activity, Action Plan, Objective, Habits to Develop, Soft Skills, Learning Outcomes.
- No markdown tables, no pipes, no bullet nesting.
`,

	"4. Physical Grooming": `SECTION-SPECIFIC REQUIREMENTS - OUTPUT STRUCTURED FORMAT (NOT MARKDOWN TABLE):

Create a 3-year PHYSICAL GROOMING plan covering health, discipline, energy management, posture, professional presence, and stress regulation. Output AT LEAST 6-7 months per year, spread across the year.

Year 1:
- Month: January
 Activity: [physical grooming activity]
 Objective: [1-2 lines on how this builds discipline, energy, confidence, or readiness]
 Physical & Mental Skills Developed: [comma-separated skills such as stamina, posture, focus]
 Soft Skills: [comma-separated skills such as self-discipline, confidence, consistency]
 Learning Outcomes: [outcomes related to physical stability, mental clarity, presentation]

[Further months, e.g. April, June, September, October, December]

Year 2 / Year 3: repeat the same structure with progressive content.

RULES:
- Use EXACT field names: Month, Activity, Objective, Physical & Mental Skills Developed, Soft Skills, Learning Outcomes.
- No markdown tables, no pipes.
`,

	"5. Psychological Grooming": `SECTION-SPECIFIC REQUIREMENTS - OUTPUT STRUCTURED FORMAT (NOT MARKDOWN TABLE):

Create a 3-year PSYCHOLOGICAL GROOMING plan covering emotional regulation, mental clarity, stress management, resilience, decision-making, and self-discipline. Output AT LEAST 6-7 months per year, spread across the year.

Year 1:
- Month: January
 Activity: [psychological grooming activity]
 Objective: [1-2 lines on how this improves mental stability, focus, or emotional control]
 Psychological Skills Developed: [comma-separated skills such as emotional regulation, focus, resilience]
 Soft Skills: [comma-separated skills such as self-discipline, confidence, adaptability]
 Learning Outcomes: [outcomes related to emotional stability and behavioral control]

[Further months, e.g. February, June, August, November, December]

Year 2 / Year 3: repeat the same structure with progressive content.

RULES:
- Use EXACT field names: Month, Activity, Objective, Psychological Skills Developed, Soft Skills, Learning Outcomes.
- No markdown tables, no pipes.
`,

	"6. Suggested Reading": `SECTION-SPECIFIC REQUIREMENTS - OUTPUT STRUCTURED FORMAT (NOT MARKDOWN TABLE):

You MUST output AT LEAST 15 books (aim for 18-20): 50-60% technical/domain books for the career roles, the rest soft-skills and professional development. ONLY real, verified, famous books available in India.

OUTPUT FORMAT (row-wise blocks with these EXACT fields):

- Book Name: [title]
  Author: [author name]
  Publication: [publisher or edition]
  Availability in India: [e.g. 'Available on Amazon India/Flipkart' or Indian publisher]
  Why Should This Book Be Read?: [1-2 lines tied to their career AND skill development]

[Repeat the block for EACH book]

CRITICAL RULES:
- Each book MUST include all 5 fields.
- No markdown tables, no pipes.
`,

	"7. Health Discipline": `SECTION-SPECIFIC REQUIREMENTS - OUTPUT STRUCTURED FORMAT (NOT MARKDOWN TABLE):

CRITICAL: You MUST provide recommendations for ALL FOUR categories in this EXACT order:
1. FOOD (6-8 recommendations)
2. SLEEPING DISCIPLINE (5-6 recommendations)
3. HYDRATION (4-5 recommendations)
4. LIFESTYLE (5-6 recommendations)

For each recommendation, output:
- Category: [Food | Sleeping Discipline | Hydration | Lifestyle]
  Recommendation: [specific practice]
  Benefits for Mental Health: [1-2 lines]
  Benefits for Physical Health: [1-2 lines]

FINAL CHECK BEFORE SUBMISSION:
- Have you included FOOD, SLEEPING DISCIPLINE, HYDRATION, and LIFESTYLE categories? ALL 4 are MANDATORY.

CRITICAL RULES:
- Each recommendation MUST have all 4 fields: Category, Recommendation, Benefits for Mental Health, Benefits for Physical Health.
- Be SPECIFIC with examples; include Indian food context where relevant.
- No markdown tables, no pipes.
`,
}
