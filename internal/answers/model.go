package answers

import (
	"errors"
	"strings"
)

// ErrInvalidProfile signals missing required client identity fields.
var ErrInvalidProfile = errors.New("name and email are required")

// ClientProfile identifies the person submitting the questionnaire. It lives
// for one submission and is never persisted beyond the generated report.
type ClientProfile struct {
	Name    string
	Email   string
	Company string
}

// Validate enforces the required identity fields. Company stays optional.
func (p ClientProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Email) == "" {
		return ErrInvalidProfile
	}
	return nil
}

// Answer is the stored value for one question: a single option id or, for
// multi-select questions, the submitted option ids.
type Answer struct {
	Multi     bool
	OptionID  string
	OptionIDs []string
}

// Record is the normalized per-submission answer set: question id to answer,
// plus a side map of free-text values for "other" fields.
type Record struct {
	values     map[string]Answer
	otherTexts map[string]string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{
		values:     make(map[string]Answer),
		otherTexts: make(map[string]string),
	}
}

// SetSingle stores a single-choice answer.
func (r *Record) SetSingle(questionID, optionID string) {
	r.values[questionID] = Answer{OptionID: optionID}
}

// SetMulti stores a multi-select answer. Submission order is kept as received;
// display ordering is the report builder's concern.
func (r *Record) SetMulti(questionID string, optionIDs []string) {
	ids := make([]string, len(optionIDs))
	copy(ids, optionIDs)
	r.values[questionID] = Answer{Multi: true, OptionIDs: ids}
}

// SetOtherText stores the free-text companion value for a question.
func (r *Record) SetOtherText(questionID, text string) {
	r.otherTexts[questionID] = text
}

// Answer returns the stored answer for a question, if any.
func (r *Record) Answer(questionID string) (Answer, bool) {
	a, ok := r.values[questionID]
	return a, ok
}

// OtherText returns the free-text companion value for a question, if any.
func (r *Record) OtherText(questionID string) (string, bool) {
	t, ok := r.otherTexts[questionID]
	return t, ok
}

// Answered reports whether the question has a stored answer.
func (r *Record) Answered(questionID string) bool {
	_, ok := r.values[questionID]
	return ok
}

// Len returns the number of answered questions.
func (r *Record) Len() int {
	return len(r.values)
}
