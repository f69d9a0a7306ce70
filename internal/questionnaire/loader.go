package questionnaire

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoAreas is returned when the schema document has no areas key or an
// empty areas array.
var ErrNoAreas = errors.New("questionnaire has no areas")

// Load reads and validates the questionnaire schema from a JSON file. The
// schema is reloaded fresh per call; callers must not mutate the result.
func Load(path string) (*Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questionnaire %s: %w", path, err)
	}
	return Parse(raw)
}

// LoadWithCorrections loads the schema and then applies the given text
// corrections in place.
func LoadWithCorrections(path string, corrections Corrections) (*Schema, error) {
	schema, err := Load(path)
	if err != nil {
		return nil, err
	}
	corrections.Apply(schema)
	return schema, nil
}

// Parse decodes, normalizes and validates a schema document.
func Parse(raw []byte) (*Schema, error) {
	var schema Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("parse questionnaire: %w", err)
	}

	normalize(&schema)
	if err := Validate(&schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// normalize defaults question types and derives the IsOther flag from the
// option id suffix, so the rest of the pipeline never string-matches ids.
func normalize(s *Schema) {
	for ai := range s.Areas {
		for qi := range s.Areas[ai].Questions {
			q := &s.Areas[ai].Questions[qi]
			if q.Type != TypeMulti {
				q.Type = TypeSingle
			}
			for oi := range q.Options {
				opt := &q.Options[oi]
				opt.IsOther = IsOtherID(opt.ID)
			}
		}
	}
}

// Validate checks the schema invariants: at least one area, globally unique
// question ids, and option ids unique within each question.
func Validate(s *Schema) error {
	if len(s.Areas) == 0 {
		return ErrNoAreas
	}

	seenQuestions := make(map[string]string)
	for _, area := range s.Areas {
		if area.ID == "" {
			return fmt.Errorf("area %q: missing id", area.Name)
		}
		for _, q := range area.Questions {
			if q.ID == "" {
				return fmt.Errorf("area %s: question with empty id", area.ID)
			}
			if prev, dup := seenQuestions[q.ID]; dup {
				return fmt.Errorf("duplicate question id %s (areas %s and %s)", q.ID, prev, area.ID)
			}
			seenQuestions[q.ID] = area.ID

			seenOptions := make(map[string]struct{}, len(q.Options))
			for _, opt := range q.Options {
				if opt.ID == "" {
					return fmt.Errorf("question %s: option with empty id", q.ID)
				}
				if _, dup := seenOptions[opt.ID]; dup {
					return fmt.Errorf("question %s: duplicate option id %s", q.ID, opt.ID)
				}
				seenOptions[opt.ID] = struct{}{}
			}
		}
	}
	return nil
}
