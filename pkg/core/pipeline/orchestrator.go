package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"student_portfolio/pkg/core/prompt"
	"student_portfolio/pkg/core/report"
	"student_portfolio/pkg/core/utils"
	"student_portfolio/pkg/core/validate"
)

// MaxRetries is the number of regeneration attempts allowed per section
// after the initial one. A section is attempted at most MaxRetries+1 times
// before its last content is accepted regardless of validation issues.
const MaxRetries = 2

// PromptExecutor runs a prompt against whichever LLM provider is configured
// for the given agent type. *agent.Manager is the production implementation;
// tests supply their own.
type PromptExecutor interface {
	ExecutePrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error)
}

// Orchestrator manages the end-to-end section flow:
// Supervise -> Generate -> Validate -> (Retry | Accept -> Store) -> Finalize
type Orchestrator struct {
	executor  PromptExecutor
	agentType string
}

// NewOrchestrator creates an orchestrator with all required dependencies.
// executor: prompt executor (e.g., agent.Manager)
func NewOrchestrator(executor PromptExecutor) *Orchestrator {
	return &Orchestrator{
		executor:  executor,
		agentType: "report",
	}
}

// SetAgentType overrides the agent type used for provider selection.
func (o *Orchestrator) SetAgentType(agentType string) {
	o.agentType = agentType
}

// Run executes the full pipeline for a single report request. It always
// returns a state with one stored section per planned section; generation
// failures degrade to fallback content rather than aborting the run.
func (o *Orchestrator) Run(ctx context.Context, req report.Request) (*report.State, error) {
	if !req.ReportType.Valid() {
		return nil, fmt.Errorf("INVALID_REPORT_TYPE: %q", req.ReportType)
	}

	state := &report.State{
		ReportType:  req.ReportType,
		Inputs:      req.Inputs,
		SectionPlan: report.SectionsFor(req.ReportType),
	}

	fmt.Printf("[Pipeline] Starting %s report for %s (%d sections)...\n",
		state.ReportType, state.Inputs.StudentName, len(state.SectionPlan))
	start := time.Now()

	// Termination is driven by the count of accepted sections; the index
	// bound is a safety net against a plan/store mismatch.
	for len(state.Sections) < len(state.SectionPlan) && state.Index < len(state.SectionPlan) {
		o.supervise(state)
		o.generate(ctx, state)
		state.Validation = validate.Section(state.CurrentName, state.CurrentContent)

		if shouldRetry(state.Validation, state.RetryCount) {
			state.RetryCount++
			fmt.Printf("[Pipeline] Retrying '%s' (attempt %d/%d): %s\n",
				state.CurrentName, state.RetryCount+1, MaxRetries+1, strings.Join(state.Validation.Issues, "; "))
			continue
		}

		if !state.Validation.IsValid {
			fmt.Printf("[Pipeline] Warning: accepting '%s' after %d attempts with issues: %s\n",
				state.CurrentName, state.RetryCount+1, strings.Join(state.Validation.Issues, "; "))
		}
		o.store(state)
	}

	o.finalize(state)
	fmt.Printf("[Pipeline] Completed %s report for %s in %v\n",
		state.ReportType, state.Inputs.StudentName, time.Since(start))
	return state, nil
}

// supervise selects the current section from the plan.
func (o *Orchestrator) supervise(state *report.State) {
	state.CurrentName = state.SectionPlan[state.Index]
	if state.RetryCount == 0 {
		fmt.Printf("[Pipeline] Generating section %d/%d: %s\n",
			state.Index+1, len(state.SectionPlan), state.CurrentName)
	}
}

// generate produces content for the current section. Provider failures are
// recorded on the state and replaced with fallback content, which still
// flows through validation like any other attempt.
func (o *Orchestrator) generate(ctx context.Context, state *report.State) {
	sectionPrompt, err := prompt.SectionPrompt(state.ReportType, state.Inputs, state.Index)
	if err != nil {
		state.Err = err.Error()
		state.CurrentContent = fallbackContent(state.CurrentName)
		return
	}

	content, err := o.executor.ExecutePrompt(ctx, o.agentType, sectionPrompt, prompt.SystemPrompt(), nil)
	if err != nil {
		fmt.Printf("[Pipeline] Warning: generation failed for '%s': %v\n", state.CurrentName, err)
		state.Err = err.Error()
		state.CurrentContent = fallbackContent(state.CurrentName)
		return
	}

	state.CurrentContent = utils.CleanMarkdown(content)
}

// store appends the current section to the accepted set and advances the
// plan index. Storing is idempotent per section name: a duplicate attempt
// still advances the cursor but never stores twice.
func (o *Orchestrator) store(state *report.State) {
	if !state.HasSection(state.CurrentName) {
		state.Sections = append(state.Sections, report.Section{
			Name:    state.CurrentName,
			Content: state.CurrentContent,
		})
	}
	state.Index++
	state.RetryCount = 0
	state.CurrentName = ""
	state.CurrentContent = ""
	state.Validation = report.ValidationResult{}
}

// finalize assembles the full report text from the stored sections.
// Contents are joined as-is: the prompt requires each section to open
// with its own heading line, so prepending names here would duplicate
// every heading.
func (o *Orchestrator) finalize(state *report.State) {
	parts := make([]string, 0, len(state.Sections))
	for _, sec := range state.Sections {
		parts = append(parts, sec.Content)
	}
	state.FinalReport = strings.Join(parts, "\n\n")
}

// shouldRetry decides whether a failed validation earns another attempt.
func shouldRetry(v report.ValidationResult, retryCount int) bool {
	return v.RequiresRetry && retryCount < MaxRetries
}

func fallbackContent(name string) string {
	return name + "\n\nContent generation failed."
}
