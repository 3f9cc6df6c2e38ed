// Command report generates career and development documents from the
// terminal, without running the API server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"student_portfolio/pkg/core/agent"
	"student_portfolio/pkg/core/pipeline"
	"student_portfolio/pkg/core/prompt"
	"student_portfolio/pkg/core/render"
	"student_portfolio/pkg/core/report"
	"student_portfolio/pkg/core/utils"
)

var (
	profilePath string
	reportType  string
	outDir      string
)

func main() {
	root := &cobra.Command{
		Use:   "report",
		Short: "Generate student career and development reports",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the full pipeline for one student profile and write a .docx",
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVar(&profilePath, "profile", "", "path to the student profile JSON file (required)")
	generateCmd.Flags().StringVar(&reportType, "type", "career", "report type: career or development")
	generateCmd.Flags().StringVar(&outDir, "out", "generated_reports", "output directory for the document")
	generateCmd.MarkFlagRequired("profile")

	sectionsCmd := &cobra.Command{
		Use:   "sections",
		Short: "Print the section plan for a report type",
		RunE:  runSections,
	}
	sectionsCmd.Flags().StringVar(&reportType, "type", "career", "report type: career or development")

	root.AddCommand(generateCmd, sectionsCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	godotenv.Load()

	t := report.Type(reportType)
	if !t.Valid() {
		return fmt.Errorf("unknown report type %q (want career or development)", reportType)
	}

	raw, err := os.ReadFile(profilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}
	var inputs report.Inputs
	if _, err := utils.SmartParse(string(raw), &inputs); err != nil {
		return fmt.Errorf("failed to parse profile: %w", err)
	}
	if inputs.Empty() {
		return fmt.Errorf("profile %s has no usable fields", profilePath)
	}

	if err := prompt.LoadFromDirectory("resources"); err != nil {
		fmt.Printf("[WARNING] Prompt library not loaded, using fallbacks: %v\n", err)
	}

	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)

	orch := pipeline.NewOrchestrator(agent.NewManager(agentCfg))
	state, err := orch.Run(context.Background(), report.Request{ReportType: t, Inputs: inputs})
	if err != nil {
		return err
	}

	filename, err := render.WriteDocument(state, outDir)
	if err != nil {
		return err
	}
	fmt.Printf("Report written: %s\n", filename)
	if state.Err != "" {
		fmt.Printf("Completed with degraded sections (last provider error: %s)\n", state.Err)
	}
	return nil
}

func runSections(cmd *cobra.Command, args []string) error {
	t := report.Type(reportType)
	if !t.Valid() {
		return fmt.Errorf("unknown report type %q (want career or development)", reportType)
	}
	for _, name := range report.SectionsFor(t) {
		fmt.Println(name)
	}
	return nil
}
