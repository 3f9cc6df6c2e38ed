package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"student_portfolio/pkg/core/report"
)

// mockExecutor is a PromptExecutor whose behavior is supplied per test.
type mockExecutor struct {
	calls   int
	execute func(calls int, prompt string) (string, error)
}

func (m *mockExecutor) ExecutePrompt(ctx context.Context, agentType, rawPrompt, rawSystemPrompt string, options map[string]interface{}) (string, error) {
	m.calls++
	return m.execute(m.calls, rawPrompt)
}

func goodContent(section string) string {
	content := strings.Repeat("Substantive guidance for the student with concrete next steps. ", 4)
	if strings.Contains(section, "Health Discipline") {
		content += " Food, Sleeping Discipline, Hydration and Lifestyle recommendations follow."
	}
	return content
}

func testInputs() report.Inputs {
	return report.Inputs{
		StudentName:   "Asha Rao",
		Standard:      "10",
		Board:         "CBSE",
		HighestSkills: []string{"Strategy", "Execution"},
		SkillPercentages: map[string]float64{
			"Strategy":  82,
			"Execution": 74,
		},
		CareerRoles: "Data Scientist, Product Manager",
	}
}

func TestRunCareerReportStoresAllSections(t *testing.T) {
	exec := &mockExecutor{execute: func(_ int, p string) (string, error) {
		return goodContent(p), nil
	}}
	orch := NewOrchestrator(exec)

	state, err := orch.Run(context.Background(), report.Request{
		ReportType: report.TypeCareer,
		Inputs:     testInputs(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(state.Sections) != len(report.CareerSections) {
		t.Fatalf("expected %d sections, got %d", len(report.CareerSections), len(state.Sections))
	}
	for i, sec := range state.Sections {
		if sec.Name != report.CareerSections[i] {
			t.Errorf("section %d: expected %q, got %q", i, report.CareerSections[i], sec.Name)
		}
	}
	if exec.calls != len(report.CareerSections) {
		t.Errorf("expected %d provider calls, got %d", len(report.CareerSections), exec.calls)
	}
	if state.FinalReport == "" {
		t.Error("expected non-empty final report")
	}
}

func TestRunDevelopmentReportStoresAllSections(t *testing.T) {
	exec := &mockExecutor{execute: func(_ int, p string) (string, error) {
		return goodContent(p), nil
	}}
	orch := NewOrchestrator(exec)

	state, err := orch.Run(context.Background(), report.Request{
		ReportType: report.TypeDevelopment,
		Inputs:     testInputs(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(state.Sections) != len(report.DevelopmentSections) {
		t.Fatalf("expected %d sections, got %d", len(report.DevelopmentSections), len(state.Sections))
	}
}

func TestRunRetriesThenAccepts(t *testing.T) {
	// First two attempts at the first section are too short; third is good.
	exec := &mockExecutor{execute: func(calls int, p string) (string, error) {
		if calls <= 2 {
			return "too short", nil
		}
		return goodContent(p), nil
	}}
	orch := NewOrchestrator(exec)

	state, err := orch.Run(context.Background(), report.Request{
		ReportType: report.TypeCareer,
		Inputs:     testInputs(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// 3 attempts for the first section, 1 each for the other 5.
	wantCalls := 3 + len(report.CareerSections) - 1
	if exec.calls != wantCalls {
		t.Errorf("expected %d provider calls, got %d", wantCalls, exec.calls)
	}
	first := state.Sections[0]
	if strings.TrimSpace(first.Content) == "too short" {
		t.Error("expected third attempt's content to be stored, got a rejected attempt")
	}
}

func TestRunPersistentFailureCapsAttempts(t *testing.T) {
	// Every attempt fails validation: each section gets exactly
	// MaxRetries+1 attempts, then its last content is accepted.
	exec := &mockExecutor{execute: func(int, string) (string, error) {
		return "bad", nil
	}}
	orch := NewOrchestrator(exec)

	state, err := orch.Run(context.Background(), report.Request{
		ReportType: report.TypeCareer,
		Inputs:     testInputs(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	wantCalls := (MaxRetries + 1) * len(report.CareerSections)
	if exec.calls != wantCalls {
		t.Errorf("expected %d provider calls, got %d", wantCalls, exec.calls)
	}
	if len(state.Sections) != len(report.CareerSections) {
		t.Errorf("expected all %d sections stored despite failures, got %d",
			len(report.CareerSections), len(state.Sections))
	}
}

func TestRunProviderErrorFallsBack(t *testing.T) {
	exec := &mockExecutor{execute: func(int, string) (string, error) {
		return "", errors.New("OPENAI_API_ERROR: status=500")
	}}
	orch := NewOrchestrator(exec)

	state, err := orch.Run(context.Background(), report.Request{
		ReportType: report.TypeCareer,
		Inputs:     testInputs(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if state.Err == "" {
		t.Error("expected provider error to be recorded on state")
	}
	if len(state.Sections) != len(report.CareerSections) {
		t.Fatalf("expected fallback sections for the whole plan, got %d", len(state.Sections))
	}
	for _, sec := range state.Sections {
		want := sec.Name + "\n\nContent generation failed."
		if sec.Content != want {
			t.Errorf("section %q: expected fallback content, got %q", sec.Name, sec.Content)
		}
	}
	// Fallback content is itself too short, so it goes through the full
	// retry budget before acceptance.
	wantCalls := (MaxRetries + 1) * len(report.CareerSections)
	if exec.calls != wantCalls {
		t.Errorf("expected %d provider calls, got %d", wantCalls, exec.calls)
	}
}

func TestRunInvalidReportType(t *testing.T) {
	orch := NewOrchestrator(&mockExecutor{execute: func(int, string) (string, error) {
		return "", nil
	}})
	_, err := orch.Run(context.Background(), report.Request{ReportType: "quarterly"})
	if err == nil {
		t.Fatal("expected error for unknown report type")
	}
	if !strings.Contains(err.Error(), "INVALID_REPORT_TYPE") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStoreIsIdempotent(t *testing.T) {
	orch := NewOrchestrator(nil)
	state := &report.State{
		ReportType:  report.TypeCareer,
		SectionPlan: report.CareerSections,
	}
	state.CurrentName = report.CareerSections[0]
	state.CurrentContent = "first"
	orch.store(state)

	// A duplicate store for the same name must not add a second copy,
	// but still advances the cursor and resets the retry budget.
	state.Index = 0
	state.RetryCount = 2
	state.CurrentName = report.CareerSections[0]
	state.CurrentContent = "second"
	orch.store(state)

	if len(state.Sections) != 1 {
		t.Fatalf("expected 1 stored section, got %d", len(state.Sections))
	}
	if state.Sections[0].Content != "first" {
		t.Errorf("duplicate store must not overwrite: got %q", state.Sections[0].Content)
	}
	if state.Index != 1 || state.RetryCount != 0 {
		t.Errorf("expected index advanced and retry reset, got index=%d retry=%d", state.Index, state.RetryCount)
	}
}

func TestShouldRetry(t *testing.T) {
	bad := report.ValidationResult{RequiresRetry: true}
	good := report.ValidationResult{IsValid: true}

	if !shouldRetry(bad, 0) || !shouldRetry(bad, MaxRetries-1) {
		t.Error("expected retry while budget remains")
	}
	if shouldRetry(bad, MaxRetries) {
		t.Error("expected no retry once budget is exhausted")
	}
	if shouldRetry(good, 0) {
		t.Error("valid result must never retry")
	}
}

func TestFinalizeJoinsContentsInOrder(t *testing.T) {
	orch := NewOrchestrator(nil)
	state := &report.State{
		Sections: []report.Section{
			{Name: "1. First", Content: "alpha"},
			{Name: "2. Second", Content: "beta"},
		},
	}
	orch.finalize(state)

	// Section names never appear in the final text: the generated content
	// already carries its heading as its first line.
	want := "alpha\n\nbeta"
	if state.FinalReport != want {
		t.Errorf("unexpected final report:\n%q\nwant:\n%q", state.FinalReport, want)
	}
}

func TestRunFinalReportIsJoinedContents(t *testing.T) {
	exec := &mockExecutor{execute: func(_ int, p string) (string, error) {
		return goodContent(p), nil
	}}
	orch := NewOrchestrator(exec)

	state, err := orch.Run(context.Background(), report.Request{
		ReportType: report.TypeCareer,
		Inputs:     testInputs(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	contents := make([]string, 0, len(state.Sections))
	for _, sec := range state.Sections {
		contents = append(contents, sec.Content)
	}
	want := strings.Join(contents, "\n\n")
	if state.FinalReport != want {
		t.Errorf("final report is not the joined section contents:\n%q\nwant:\n%q", state.FinalReport, want)
	}
	// goodContent carries no heading line, so any section name found in
	// the blob was prepended by the assembly step.
	for _, name := range report.CareerSections {
		if strings.Contains(state.FinalReport, name) {
			t.Errorf("section name %q injected into final report", name)
		}
	}
}

func TestRunStripsCodeFences(t *testing.T) {
	fenced := "```markdown\n" + goodContent("1. Detailed Career Role Breakdown") + "\n```"
	exec := &mockExecutor{execute: func(_ int, p string) (string, error) {
		if strings.Contains(p, "1. Detailed Career Role Breakdown") {
			return fenced, nil
		}
		return goodContent(p), nil
	}}
	orch := NewOrchestrator(exec)

	state, err := orch.Run(context.Background(), report.Request{
		ReportType: report.TypeCareer,
		Inputs:     testInputs(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.Contains(state.Sections[0].Content, "```") {
		t.Error("expected code fences to be stripped before validation and storage")
	}
}
