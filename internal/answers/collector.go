package answers

import (
	"net/url"
	"strings"

	"assessment-backend/internal/questionnaire"
)

// Collect normalizes raw form values into a Record, walking questions in
// schema order. Unanswered questions get no entry; completeness is accounted
// for later by the report builder, not rejected here. Option ids are not
// cross-checked against the question's option set at this stage.
func Collect(schema *questionnaire.Schema, form url.Values) *Record {
	record := NewRecord()

	for _, area := range schema.Areas {
		for _, q := range area.Questions {
			if q.IsMulti() {
				if values := nonEmpty(form[q.ID]); len(values) > 0 {
					record.SetMulti(q.ID, values)
				}
			} else {
				if value := strings.TrimSpace(form.Get(q.ID)); value != "" {
					record.SetSingle(q.ID, value)
				}
			}

			// The free-text companion is copied verbatim whenever present,
			// even if the stored answer is not an "other" option. That
			// mirrors the shipped behavior; see the collector tests.
			otherKey := questionnaire.OtherFieldKey(q.ID)
			if text := form.Get(otherKey); text != "" {
				record.SetOtherText(q.ID, text)
			}
		}
	}

	return record
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
