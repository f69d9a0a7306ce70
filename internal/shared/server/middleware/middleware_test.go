package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := testEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected a generated request id header")
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "given-id")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if got := resp.Header().Get("X-Request-Id"); got != "given-id" {
		t.Fatalf("request id = %q, want the caller's id echoed", got)
	}
}

func TestCORSPreflightAndAllowedOrigin(t *testing.T) {
	r := testEngine(CORS([]string{"http://localhost:5173"}))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow-origin = %q", got)
	}

	// Unknown origins get no CORS headers.
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unexpected CORS headers for unknown origin")
	}
}

func TestRecoveryReturnsGeneric500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.Code)
	}
	body := resp.Body.String()
	if body != `{"error":"internal server error"}` {
		t.Fatalf("body = %s, want the generic error with no leaked detail", body)
	}
}
