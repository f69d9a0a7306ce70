package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Render lays the artifact out as an A4 PDF and returns the document bytes.
func Render(artifact Artifact) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(artifact.Title, true)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title, Azure blue, centered.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0, 120, 212)
	pdf.CellFormat(0, 12, tr(artifact.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeHeading(pdf, tr, "Client Information")
	writeRows(pdf, tr, artifact.ClientInfo, 50)
	pdf.Ln(6)

	if artifact.ErrorNote != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 5, tr(artifact.ErrorNote), "", "L", false)
		return output(pdf)
	}

	for _, area := range artifact.Areas {
		writeHeading(pdf, tr, fmt.Sprintf("%s. %s", area.ID, area.Name))
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 5, tr("Objective: "+area.Objective), "", "L", false)
		pdf.Ln(2)

		for _, entry := range area.Entries {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("Question %s: %s", entry.QuestionID, entry.Question)), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetX(pdf.GetX() + 5)
			pdf.MultiCell(0, 5, tr("Answer: "+entry.Answer), "", "L", false)
			pdf.Ln(1)
		}

		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("Area summary: %d of %d questions answered", area.Answered, area.Total)), "", "L", false)
		pdf.Ln(4)
	}

	writeHeading(pdf, tr, "General Summary")
	writeRows(pdf, tr, []Row{
		{Label: "Total questions:", Value: fmt.Sprintf("%d", artifact.Summary.TotalQuestions)},
		{Label: "Answered questions:", Value: fmt.Sprintf("%d", artifact.Summary.Answered)},
		{Label: "Unanswered questions:", Value: fmt.Sprintf("%d", artifact.Summary.Unanswered)},
		{Label: `"Other" fields used:`, Value: fmt.Sprintf("%d", artifact.Summary.OtherUsed)},
		{Label: "Completion percentage:", Value: artifact.Summary.Completion},
	}, 60)

	return output(pdf)
}

func writeHeading(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(16, 110, 190)
	pdf.CellFormat(0, 8, tr(text), "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func writeRows(pdf *fpdf.Fpdf, tr func(string) string, rows []Row, labelWidth float64) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(240, 248, 255)
	for _, row := range rows {
		pdf.CellFormat(labelWidth, 7, tr(row.Label), "1", 0, "L", true, 0, "")
		pdf.CellFormat(0, 7, tr(row.Value), "1", 1, "L", false, 0, "")
	}
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
