package analyzer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestAnalyzeSuccess(t *testing.T) {
	var gotClientName, gotDate, gotFileName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotClientName = r.FormValue("clientName")
		gotDate = r.FormValue("assessmentDate")
		if _, header, err := r.FormFile("file"); err == nil {
			gotFileName = header.Filename
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"analysis":{"maturityScore":80}}`))
	}))
	defer server.Close()

	client := New(server.URL, 2*time.Second)
	result := client.Analyze(context.Background(), strings.NewReader("%PDF-1.4 fake"), "report.pdf", "Ana", "2025-11-07")

	if !result.Success {
		t.Fatalf("result = %+v, want success", result)
	}
	if gotClientName != "Ana" || gotDate != "2025-11-07" || gotFileName != "report.pdf" {
		t.Fatalf("server saw clientName=%q date=%q file=%q", gotClientName, gotDate, gotFileName)
	}
	analysis, ok := result.Data["analysis"].(map[string]any)
	if !ok || analysis["maturityScore"] != float64(80) {
		t.Fatalf("data = %+v, want analysis payload passed through", result.Data)
	}
}

func TestAnalyzeDefaultsAssessmentDate(t *testing.T) {
	var gotDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(1 << 20)
		gotDate = r.FormValue("assessmentDate")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, 2*time.Second)
	client.now = func() time.Time { return time.Date(2025, 11, 7, 10, 0, 0, 0, time.UTC) }
	client.Analyze(context.Background(), strings.NewReader("x"), "r.pdf", "Ana", "")

	if gotDate != "2025-11-07" {
		t.Fatalf("assessmentDate = %q, want 2025-11-07", gotDate)
	}
}

func TestAnalyzeHTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(strings.Repeat("x", 600)))
	}))
	defer server.Close()

	client := New(server.URL, 2*time.Second)
	result := client.Analyze(context.Background(), strings.NewReader("x"), "r.pdf", "Ana", "2025-11-07")

	if result.Success {
		t.Fatalf("expected error result, got success")
	}
	if result.Error != "analyzer HTTP 502" {
		t.Fatalf("error = %q, want analyzer HTTP 502", result.Error)
	}
	if len(result.Details) != 500 {
		t.Fatalf("details length = %d, want truncated to 500", len(result.Details))
	}
}

func TestAnalyzeMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := New(server.URL, 2*time.Second)
	result := client.Analyze(context.Background(), strings.NewReader("x"), "r.pdf", "Ana", "2025-11-07")

	if result.Success {
		t.Fatalf("expected error result, got success")
	}
	if result.Error != "invalid response from analyzer" {
		t.Fatalf("error = %q", result.Error)
	}
	if !strings.Contains(result.RawResponse, "not json") {
		t.Fatalf("raw response = %q, want body echoed back", result.RawResponse)
	}
}

func TestAnalyzeTimeoutFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, 30*time.Millisecond)
	result := client.Analyze(context.Background(), strings.NewReader("x"), "r.pdf", "Ana", "2025-11-07")

	assertOfflineFallback(t, result)
}

func TestAnalyzeConnectionRefusedFallsBack(t *testing.T) {
	// A closed port: nothing listens here.
	client := New("http://127.0.0.1:1", time.Second)
	result := client.Analyze(context.Background(), strings.NewReader("x"), "r.pdf", "Ana", "2025-11-07")

	assertOfflineFallback(t, result)
}

func assertOfflineFallback(t *testing.T, result Result) {
	t.Helper()
	if !result.Success {
		t.Fatalf("fallback must report success, got %+v", result)
	}
	status, _ := result.Data["status"].(string)
	if !strings.Contains(status, "generated offline") {
		t.Fatalf("status = %q, want the offline marker", status)
	}
	analysis, ok := result.Data["analysis"].(map[string]any)
	if !ok {
		t.Fatalf("fallback data missing analysis block: %+v", result.Data)
	}
	if analysis["overallMaturity"] != "Intermediate" || analysis["maturityScore"] != 65 {
		t.Fatalf("fallback analysis = %+v, want Intermediate/65", analysis)
	}
}

func TestFallbackDeterministic(t *testing.T) {
	now := time.Date(2025, 11, 7, 10, 0, 0, 0, time.UTC)
	a := Fallback("Ana", now)
	b := Fallback("Ana", now)

	if a.Data["generatedAt"] != b.Data["generatedAt"] || a.Data["client"] != "Ana" {
		t.Fatalf("fallback not deterministic: %+v vs %+v", a.Data, b.Data)
	}
	if a.Data["status"] != OfflineStatus {
		t.Fatalf("status = %v, want %q", a.Data["status"], OfflineStatus)
	}
}
