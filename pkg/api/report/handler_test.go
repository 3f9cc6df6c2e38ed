package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"student_portfolio/pkg/core/agent"
)

// initTestHandler wires the handlers against an unconfigured provider so
// generation degrades to fallback content without network access.
func initTestHandler(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("REPORTS_DIR", t.TempDir())
	InitHandler(agent.NewManager(agent.Config{ActiveProvider: "openai"}))
}

func TestHandleGenerateReport(t *testing.T) {
	initTestHandler(t)

	body := `{
		"report_type": "career",
		"inputs": {
			"sname": "Asha Rao",
			"standard": "10",
			"board": "CBSE",
			"career_roles": "Data Scientist"
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/generate-report", strings.NewReader(body))
	rec := httptest.NewRecorder()
	HandleGenerateReport(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success  bool   `json:"success"`
		Content  string `json:"content"`
		Filename string `json:"filename"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Filename != "Career_Report_Asha_Rao_Data_Scientist.docx" {
		t.Errorf("unexpected filename: %q", resp.Filename)
	}
	if resp.Content == "" {
		t.Error("expected non-empty content")
	}

	if _, err := os.Stat(filepath.Join(outputDir, resp.Filename)); err != nil {
		t.Errorf("expected document on disk: %v", err)
	}
}

func TestHandleGenerateReportNoInputs(t *testing.T) {
	initTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/generate-report", strings.NewReader(`{"report_type":"career"}`))
	rec := httptest.NewRecorder()
	HandleGenerateReport(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No inputs provided") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandleGenerateReportUnknownType(t *testing.T) {
	initTestHandler(t)

	body := `{"report_type":"quarterly","inputs":{"sname":"X"}}`
	req := httptest.NewRequest(http.MethodPost, "/generate-report", strings.NewReader(body))
	rec := httptest.NewRecorder()
	HandleGenerateReport(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleGenerateReportLenientJSON(t *testing.T) {
	initTestHandler(t)

	// Trailing comma: rejected by encoding/json, recovered by the repair
	// chain.
	body := `{"report_type":"development","inputs":{"sname":"Ravi","career_roles":"Architect",}}`
	req := httptest.NewRequest(http.MethodPost, "/generate-report", strings.NewReader(body))
	rec := httptest.NewRecorder()
	HandleGenerateReport(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected lenient parse to succeed, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleDownloadMissingFile(t *testing.T) {
	initTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/download/does_not_exist.docx", nil)
	rec := httptest.NewRecorder()
	HandleDownload(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected JSON error body: %v", err)
	}
	if resp["error"] != "File not found" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestHandleDownloadRejectsNonGet(t *testing.T) {
	initTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/download/report.docx", nil)
	rec := httptest.NewRecorder()
	HandleDownload(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestHandleDownloadPathTraversal(t *testing.T) {
	initTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/download/..%2F..%2Fetc%2Fpasswd", nil)
	rec := httptest.NewRecorder()
	HandleDownload(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for traversal attempt, got %d", rec.Code)
	}
}

func TestHandleHistoryWithoutDatabase(t *testing.T) {
	initTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/report/history", nil)
	rec := httptest.NewRecorder()
	HandleHistory(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Reports []any `json:"reports"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Reports == nil {
		t.Error("expected empty list, not null")
	}
}

func TestHandleHistoryStudentFilterWithoutDatabase(t *testing.T) {
	initTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/report/history?student=Asha+Rao", nil)
	rec := httptest.NewRecorder()
	HandleHistory(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Reports []any `json:"reports"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Reports == nil {
		t.Error("expected empty list, not null")
	}
}

func TestHandlePreview(t *testing.T) {
	initTestHandler(t)

	body := `{
		"report_type": "career",
		"sections": [
			{"name": "1. Detailed Career Role Breakdown", "content": "Career Role: Data Scientist\nTechnical Skills: Python"}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/report/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()
	HandlePreview(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		HTML    string `json:"html"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !resp.Success || !strings.Contains(resp.HTML, "Career Development Report") {
		t.Errorf("unexpected preview: %+v", resp)
	}
}
