package submissions

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"assessment-backend/internal/analyzer"
	"assessment-backend/internal/answers"
	"assessment-backend/internal/questionnaire"
	"assessment-backend/internal/report"
	"assessment-backend/internal/scoring"
	"assessment-backend/internal/shared/storage/object"
	"assessment-backend/internal/shared/telemetry"
)

// AnalyzerClient is the outbound analysis boundary.
type AnalyzerClient interface {
	Analyze(ctx context.Context, file io.Reader, fileName, clientName, assessmentDate string) analyzer.Result
}

// Service runs a submission start to finish: collect answers, build and
// persist the PDF report, dispatch it for analysis.
type Service struct {
	SchemaPath  string
	Corrections questionnaire.Corrections
	ScoreTable  scoring.Table
	Store       object.Store
	Analyzer    AnalyzerClient
	Builder     *report.Builder
}

// Outcome is what a completed submission hands back to the HTTP layer.
type Outcome struct {
	PDFFilename string
	Analysis    analyzer.Result
	Maturity    scoring.Result
}

// LoadSchema reads the questionnaire fresh from disk. Reloading per request
// trades repeated parsing for freedom from any cache-invalidation concern.
func (s *Service) LoadSchema() (*questionnaire.Schema, error) {
	return questionnaire.LoadWithCorrections(s.SchemaPath, s.Corrections)
}

// Process handles one submission synchronously. Validation failures come back
// as answers.ErrInvalidProfile; analyzer trouble never fails the submission.
func (s *Service) Process(ctx context.Context, profile answers.ClientProfile, form url.Values) (Outcome, error) {
	if err := profile.Validate(); err != nil {
		return Outcome{}, err
	}

	schema, err := s.LoadSchema()
	if err != nil {
		return Outcome{}, fmt.Errorf("load questionnaire: %w", err)
	}

	record := answers.Collect(schema, form)

	maturity := scoring.Score(schema, record, s.ScoreTable)
	telemetry.Info("submission.maturity", map[string]any{
		"client":       profile.Name,
		"overall":      maturity.Overall,
		"area_percent": maturity.AreaPercent,
	})

	artifact := s.Builder.Build(profile, schema, record)
	pdfBytes, err := report.Render(artifact)
	if err != nil {
		return Outcome{}, fmt.Errorf("generate report: %w", err)
	}

	if _, err := s.Store.Save(ctx, artifact.Filename, bytes.NewReader(pdfBytes)); err != nil {
		return Outcome{}, fmt.Errorf("persist report: %w", err)
	}
	telemetry.Info("report.generated", map[string]any{
		"pdf_filename": artifact.Filename,
		"answered":     artifact.Summary.Answered,
		"total":        artifact.Summary.TotalQuestions,
	})

	analysis := s.Analyzer.Analyze(ctx, bytes.NewReader(pdfBytes), artifact.Filename, profile.Name, "")

	return Outcome{
		PDFFilename: artifact.Filename,
		Analysis:    analysis,
		Maturity:    maturity,
	}, nil
}
