package report

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"student_portfolio/pkg/core/agent"
	"student_portfolio/pkg/core/pipeline"
	"student_portfolio/pkg/core/render"
	corereport "student_portfolio/pkg/core/report"
	"student_portfolio/pkg/core/store"
	"student_portfolio/pkg/core/utils"
)

var (
	orchestrator *pipeline.Orchestrator
	historyRepo  *store.HistoryRepo
	outputDir    = "generated_reports"
)

// InitHandler wires the report endpoints to the agent manager and the
// shared database pool. The pool may be nil; history then degrades to a
// warning on save and an empty list on read.
func InitHandler(mgr *agent.Manager) {
	orchestrator = pipeline.NewOrchestrator(mgr)
	historyRepo = store.NewHistoryRepo(store.GetPool())
	if dir := os.Getenv("REPORTS_DIR"); dir != "" {
		outputDir = dir
	}
}

// GenerateRequest is the POST /generate-report payload.
type GenerateRequest struct {
	ReportType corereport.Type   `json:"report_type"`
	Inputs     corereport.Inputs `json:"inputs"`
}

type generateResponse struct {
	Success  bool   `json:"success"`
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func setCORS(w http.ResponseWriter, methods string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleGenerateReport runs the full pipeline for one request and writes
// the .docx alongside the response.
func HandleGenerateReport(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "POST, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Intake forms and scripts produce sloppy JSON often enough that the
	// lenient parse chain is worth it here.
	var req GenerateRequest
	if _, err := utils.SmartParse(string(body), &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ReportType == "" {
		req.ReportType = corereport.TypeCareer
	}
	if !req.ReportType.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown report type: %s", req.ReportType))
		return
	}
	if req.Inputs.Empty() {
		writeError(w, http.StatusBadRequest, "No inputs provided")
		return
	}

	fmt.Printf("[API] Generate request: type=%s student=%s\n", req.ReportType, req.Inputs.StudentName)

	state, err := orchestrator.Run(r.Context(), corereport.Request{
		ReportType: req.ReportType,
		Inputs:     req.Inputs,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename, err := render.WriteDocument(state, outputDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	recordHistory(r.Context(), state, filename)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(generateResponse{
		Success:  true,
		Content:  state.FinalReport,
		Filename: filename,
	})
}

func recordHistory(ctx context.Context, state *corereport.State, filename string) {
	entry := &store.HistoryEntry{
		ReportType:   string(state.ReportType),
		StudentName:  state.Inputs.StudentName,
		CareerRoles:  state.Inputs.CareerRoles,
		Filename:     filename,
		SectionCount: len(state.Sections),
	}
	if _, err := historyRepo.Save(ctx, entry); err != nil {
		fmt.Printf("[API] Warning: history save skipped: %v\n", err)
	}
}

// HandleDownload serves a previously generated document as an attachment.
func HandleDownload(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "GET, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Base() confines the lookup to the output directory.
	filename := filepath.Base(strings.TrimPrefix(r.URL.Path, "/download/"))
	if filename == "." || filename == "/" {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}

	path := filepath.Join(outputDir, filename)
	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	http.ServeFile(w, r, path)
}

// HandleHistory lists recently generated reports.
func HandleHistory(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "GET, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	var entries []store.HistoryEntry
	var err error
	if student := r.URL.Query().Get("student"); student != "" {
		entries, err = historyRepo.FindByStudent(r.Context(), student)
	} else {
		entries, err = historyRepo.List(r.Context(), limit)
	}
	if err != nil {
		// Missing pool or query failure: history is best-effort.
		fmt.Printf("[API] Warning: history unavailable: %v\n", err)
		entries = []store.HistoryEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"reports": entries})
}

// PreviewRequest is the POST /api/report/preview payload: already
// generated sections to render as HTML without re-running the pipeline.
type PreviewRequest struct {
	ReportType corereport.Type      `json:"report_type"`
	Sections   []corereport.Section `json:"sections"`
}

// HandlePreview renders accepted sections to sanitized HTML.
func HandlePreview(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "POST, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.ReportType.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown report type: %s", req.ReportType))
		return
	}

	state := &corereport.State{
		ReportType: req.ReportType,
		Sections:   req.Sections,
	}
	previewHTML, err := render.HTMLPreview(state)
	if err != nil {
		// Preview is advisory; degrade to escaped plain text.
		fmt.Printf("[API] Warning: preview render failed: %v\n", err)
		var plain strings.Builder
		for _, sec := range state.Sections {
			plain.WriteString(sec.Name + "\n\n" + sec.Content + "\n\n")
		}
		previewHTML = "<pre>" + html.EscapeString(plain.String()) + "</pre>"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "html": previewHTML})
}
