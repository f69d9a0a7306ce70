package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"assessment-backend/internal/shared/telemetry"
)

const rawResponseLimit = 500

// Result is the normalized outcome of a dispatch: either a successful
// analysis payload or a structured error. Transport-level faults never
// surface here; they are replaced by the offline fallback.
type Result struct {
	Success     bool           `json:"success,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	Error       string         `json:"error,omitempty"`
	Details     string         `json:"details,omitempty"`
	RawResponse string         `json:"raw_response,omitempty"`
}

// Client dispatches report PDFs to the external maturity analyzer.
type Client struct {
	url        string
	httpClient *http.Client

	// now is injectable for deterministic fallback payloads in tests.
	now func() time.Time
}

// New constructs a client with a bounded request timeout.
func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// Analyze uploads the PDF with the client metadata and normalizes the
// analyzer's response. assessmentDate defaults to today (YYYY-MM-DD) when
// empty. Timeouts and connectivity failures yield the offline fallback, so
// the submission flow always completes with some analysis payload.
func (c *Client) Analyze(ctx context.Context, file io.Reader, fileName, clientName, assessmentDate string) Result {
	if strings.TrimSpace(assessmentDate) == "" {
		assessmentDate = c.now().Format("2006-01-02")
	}

	body, contentType, err := buildMultipart(file, fileName, clientName, assessmentDate)
	if err != nil {
		telemetry.Error("analyzer.request_build_failed", map[string]any{"error": err.Error()})
		return Fallback(clientName, c.now())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		telemetry.Error("analyzer.request_build_failed", map[string]any{"error": err.Error()})
		return Fallback(clientName, c.now())
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		telemetry.Warn("analyzer.unreachable", map[string]any{
			"url":   c.url,
			"error": err.Error(),
		})
		return Fallback(clientName, c.now())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		telemetry.Warn("analyzer.body_read_failed", map[string]any{"error": err.Error()})
		return Fallback(clientName, c.now())
	}

	if resp.StatusCode != http.StatusOK {
		telemetry.Error("analyzer.http_error", map[string]any{
			"status": resp.StatusCode,
			"body":   truncate(string(raw)),
		})
		return Result{
			Error:   fmt.Sprintf("analyzer HTTP %d", resp.StatusCode),
			Details: truncate(string(raw)),
		}
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		telemetry.Error("analyzer.invalid_response", map[string]any{"body": truncate(string(raw))})
		return Result{
			Error:       "invalid response from analyzer",
			RawResponse: truncate(string(raw)),
		}
	}

	telemetry.Info("analyzer.completed", map[string]any{"client": clientName})
	return Result{Success: true, Data: data}
}

func buildMultipart(file io.Reader, fileName, clientName, assessmentDate string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("copy pdf: %w", err)
	}

	if err := writer.WriteField("clientName", clientName); err != nil {
		return nil, "", fmt.Errorf("write clientName: %w", err)
	}
	if err := writer.WriteField("assessmentDate", assessmentDate); err != nil {
		return nil, "", fmt.Errorf("write assessmentDate: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

func truncate(s string) string {
	if len(s) > rawResponseLimit {
		return s[:rawResponseLimit]
	}
	return s
}
