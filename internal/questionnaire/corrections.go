package questionnaire

// Correction rewrites one question's wording and/or individual option texts.
// The option map is keyed by option id.
type Correction struct {
	Text    string            `json:"text,omitempty"`
	Options map[string]string `json:"options,omitempty"`
}

// Corrections is a per-question set of text fixes, keyed by question id. It is
// plain data so deployments can localize or correct wording without touching
// the schema file itself.
type Corrections map[string]Correction

// Apply rewrites matching question and option texts in place and returns the
// number of replacements made. Unknown question or option ids are ignored.
func (c Corrections) Apply(s *Schema) int {
	if len(c) == 0 || s == nil {
		return 0
	}

	applied := 0
	for ai := range s.Areas {
		for qi := range s.Areas[ai].Questions {
			q := &s.Areas[ai].Questions[qi]
			fix, ok := c[q.ID]
			if !ok {
				continue
			}
			if fix.Text != "" && fix.Text != q.Text {
				q.Text = fix.Text
				applied++
			}
			for oi := range q.Options {
				opt := &q.Options[oi]
				if text, ok := fix.Options[opt.ID]; ok && text != "" && text != opt.Text {
					opt.Text = text
					applied++
				}
			}
		}
	}
	return applied
}
