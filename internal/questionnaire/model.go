package questionnaire

import "strings"

// QuestionType distinguishes single-choice from multi-select questions.
type QuestionType string

const (
	TypeSingle QuestionType = "single"
	TypeMulti  QuestionType = "multi"
)

// Schema is the full questionnaire definition. Area order is meaningful: it is
// the section order of the generated report. The schema is immutable once
// loaded.
type Schema struct {
	Metadata Metadata `json:"metadata"`
	Areas    []Area   `json:"areas"`
}

// Metadata describes the questionnaire document itself.
type Metadata struct {
	Version   string   `json:"version"`
	Language  string   `json:"language"`
	UpdatedAt string   `json:"updatedAt"`
	Changelog []string `json:"changelog,omitempty"`
}

// Area groups related questions under a named objective.
type Area struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Objective string     `json:"objective"`
	Questions []Question `json:"questions"`
}

// Question is one prompt with its ordered options. IDs are unique across the
// whole schema.
type Question struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []Option     `json:"options"`
}

// Option is one selectable choice. IsOther is derived at load time from the
// id suffix and marks the option that invites free-text input.
type Option struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	OtherFieldID string `json:"otherFieldId,omitempty"`
	IsOther      bool   `json:"-"`
}

// IsMulti reports whether the question accepts multiple selections. Anything
// other than an explicit "multi" counts as single-choice.
func (q Question) IsMulti() bool {
	return q.Type == TypeMulti
}

// OptionByID returns the option with the given id, in schema order.
func (q Question) OptionByID(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// QuestionCount returns the total number of questions across all areas.
func (s *Schema) QuestionCount() int {
	n := 0
	for _, area := range s.Areas {
		n += len(area.Questions)
	}
	return n
}

// OtherFieldKey is the form field name carrying free text for an "other"
// answer to the given question.
func OtherFieldKey(questionID string) string {
	return questionID + "_otro"
}

// IsOtherID reports whether an option id carries the "other" suffix. Kept for
// submitted ids that match no schema option; loaded options carry the explicit
// IsOther flag instead.
func IsOtherID(id string) bool {
	upper := strings.ToUpper(id)
	return strings.HasSuffix(upper, "OTRO") || strings.HasSuffix(upper, "OTHER")
}
