package submissions

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/questionnaire"
	"assessment-backend/internal/shared/telemetry"
)

//go:embed form.html
var formHTML string

var formTmpl = template.Must(template.New("form").Parse(formHTML))

func renderForm(c *gin.Context, schema *questionnaire.Schema) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := formTmpl.Execute(c.Writer, schema); err != nil {
		telemetry.Error("form.render_failed", map[string]any{"error": err.Error()})
	}
}
