package submissions

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/answers"
	"assessment-backend/internal/shared/server/respond"
	"assessment-backend/internal/shared/telemetry"
)

const maxFormSize = 1 << 20 // 1MB of form data is plenty for a questionnaire

// Handler wires the form endpoints to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the questionnaire routes to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.form)
	r.POST("/submit", h.submit)
	r.GET("/download/:filename", h.download)
	r.GET("/health", h.health)
}

func (h *Handler) form(c *gin.Context) {
	schema, err := h.Svc.LoadSchema()
	if err != nil {
		telemetry.Error("questionnaire.load_failed", map[string]any{"error": err.Error()})
		c.String(http.StatusInternalServerError, "Error loading questionnaire")
		return
	}
	renderForm(c, schema)
}

func (h *Handler) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFormSize)
	if err := c.Request.ParseForm(); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid form data", nil)
		return
	}

	profile := answers.ClientProfile{
		Name:    strings.TrimSpace(c.PostForm("client_name")),
		Email:   strings.TrimSpace(c.PostForm("client_email")),
		Company: strings.TrimSpace(c.PostForm("client_company")),
	}

	outcome, err := h.Svc.Process(c.Request.Context(), profile, c.Request.PostForm)
	if err != nil {
		if errors.Is(err, answers.ErrInvalidProfile) {
			respond.Error(c, http.StatusBadRequest, "name and email are required", nil)
			return
		}
		telemetry.Error("submission.failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	c.Set("pdfFilename", outcome.PDFFilename)
	respond.OK(c, gin.H{
		"success":         true,
		"message":         "Form processed successfully. DevOps analysis completed.",
		"pdf_filename":    outcome.PDFFilename,
		"analysis_result": outcome.Analysis,
	})
}

func (h *Handler) download(c *gin.Context) {
	fileName := c.Param("filename")

	rc, err := h.Svc.Store.Open(c.Request.Context(), fileName)
	if err != nil {
		if os.IsNotExist(err) {
			c.String(http.StatusNotFound, "file not found")
			return
		}
		telemetry.Error("download.failed", map[string]any{"file": fileName, "error": err.Error()})
		c.String(http.StatusNotFound, "file not found")
		return
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		telemetry.Error("download.failed", map[string]any{"file": fileName, "error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
