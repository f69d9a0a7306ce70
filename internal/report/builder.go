package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"assessment-backend/internal/answers"
	"assessment-backend/internal/questionnaire"
	"assessment-backend/internal/shared/util"
)

const (
	notAnswered      = "Not answered"
	answerNotFound   = "Answer not found"
	otherUnspecified = "Other (unspecified)"
	notSpecified     = "Not specified"
)

// Artifact is the fully resolved report: an ordered set of sections plus the
// stable file name identifying the rendered PDF. It is immutable after Build.
type Artifact struct {
	Filename   string
	Title      string
	ClientInfo []Row
	Areas      []AreaBlock
	Summary    Summary
	ErrorNote  string
}

// Row is one label/value line of a report table.
type Row struct {
	Label string
	Value string
}

// AreaBlock holds one area's heading, its resolved Q&A entries and the
// answered tally.
type AreaBlock struct {
	ID        string
	Name      string
	Objective string
	Entries   []Entry
	Answered  int
	Total     int
}

// Entry is one question with its resolved answer text.
type Entry struct {
	QuestionID string
	Question   string
	Answer     string
}

// Summary is the global completion accounting at the end of the report.
type Summary struct {
	TotalQuestions int
	Answered       int
	Unanswered     int
	OtherUsed      int
	Completion     string
}

// Builder assembles artifacts. Now and NewID exist so tests can pin the
// timestamped file name and the assessment id.
type Builder struct {
	Now   func() time.Time
	NewID func() string
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Builder) newID() string {
	if b.NewID != nil {
		return b.NewID()
	}
	return uuid.NewString()
}

// Build walks the schema in order and resolves every answer. A schema without
// areas degrades to an artifact carrying a single error note; it never fails.
func (b *Builder) Build(profile answers.ClientProfile, schema *questionnaire.Schema, record *answers.Record) Artifact {
	now := b.now()
	artifact := Artifact{
		Filename: fmt.Sprintf("report_devops_%s_%s.pdf", util.ClientNameSlug(profile.Name), now.Format("20060102_150405")),
		Title:    "DevOps Assessment - Response Report",
		ClientInfo: []Row{
			{Label: "Name:", Value: defaultIfEmpty(profile.Name)},
			{Label: "Email:", Value: defaultIfEmpty(profile.Email)},
			{Label: "Company:", Value: defaultIfEmpty(profile.Company)},
			{Label: "Assessment date:", Value: now.Format("02/01/2006 15:04")},
			{Label: "Assessment ID:", Value: shortID(b.newID())},
		},
		Summary: Summary{Completion: "0%"},
	}

	if schema == nil || len(schema.Areas) == 0 {
		artifact.ErrorNote = "Error: the questionnaire could not be loaded"
		return artifact
	}

	totalQuestions := 0
	answered := 0
	otherUsed := 0

	for _, area := range schema.Areas {
		block := AreaBlock{
			ID:        area.ID,
			Name:      area.Name,
			Objective: area.Objective,
			Total:     len(area.Questions),
		}
		for _, q := range area.Questions {
			totalQuestions++
			entry := Entry{QuestionID: q.ID, Question: q.Text}
			if record.Answered(q.ID) {
				answered++
				block.Answered++
				text, usedOther := resolveAnswer(q, record)
				entry.Answer = text
				if usedOther {
					otherUsed++
				}
			} else {
				entry.Answer = notAnswered
			}
			block.Entries = append(block.Entries, entry)
		}
		artifact.Areas = append(artifact.Areas, block)
	}

	artifact.Summary = Summary{
		TotalQuestions: totalQuestions,
		Answered:       answered,
		Unanswered:     totalQuestions - answered,
		OtherUsed:      otherUsed,
		Completion:     completionPercent(answered, totalQuestions),
	}
	return artifact
}

// resolveAnswer turns a stored answer into display text. For multi-select,
// options render in schema order (which also de-duplicates repeats) and
// unknown ids are silently dropped. For single-choice, an "other" selection
// wins over plain option resolution and pulls in the free-text companion.
func resolveAnswer(q questionnaire.Question, record *answers.Record) (string, bool) {
	answer, _ := record.Answer(q.ID)

	if answer.Multi {
		selected := make(map[string]struct{}, len(answer.OptionIDs))
		for _, id := range answer.OptionIDs {
			selected[id] = struct{}{}
		}
		text := ""
		for _, opt := range q.Options {
			if _, ok := selected[opt.ID]; !ok {
				continue
			}
			if text != "" {
				text += ", "
			}
			text += opt.Text
		}
		if text == "" {
			return answerNotFound, false
		}
		return text, false
	}

	opt, found := q.OptionByID(answer.OptionID)
	isOther := (found && opt.IsOther) || questionnaire.IsOtherID(answer.OptionID)
	switch {
	case isOther:
		if text, ok := record.OtherText(q.ID); ok && text != "" {
			return "Other: " + text, true
		}
		return otherUnspecified, false
	case found:
		return opt.Text, false
	default:
		return answerNotFound, false
	}
}

func completionPercent(answered, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(answered)/float64(total)*100)
}

func defaultIfEmpty(s string) string {
	if s == "" {
		return notSpecified
	}
	return s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
