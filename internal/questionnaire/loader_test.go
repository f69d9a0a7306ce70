package questionnaire

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleDoc = `{
  "metadata": {"version": "2.1", "language": "es-419", "updatedAt": "2025-11-07"},
  "areas": [
    {
      "id": "A",
      "name": "Agile Planning",
      "objective": "Planning and backlog practices",
      "questions": [
        {
          "id": "A1",
          "text": "Primary planning tool?",
          "type": "single",
          "options": [
            {"id": "A1O1", "text": "Azure Boards"},
            {"id": "A1O2", "text": "Jira"},
            {"id": "A1OTRO", "text": "Otro (especificar)", "otherFieldId": "A1OTRO_TEXTO"}
          ]
        },
        {
          "id": "A2",
          "text": "Delivery metrics reviewed?",
          "type": "multi",
          "options": [
            {"id": "A2O1", "text": "Lead time"},
            {"id": "A2O2", "text": "Deployment frequency"},
            {"id": "A2OTHER", "text": "Other"}
          ]
        }
      ]
    },
    {
      "id": "B",
      "name": "Code Quality",
      "objective": "Versioning and review practices",
      "questions": [
        {
          "id": "B1",
          "text": "Main repository platform?",
          "options": [
            {"id": "B1O1", "text": "Azure Repos"},
            {"id": "B1O2", "text": "GitHub"}
          ]
        }
      ]
    }
  ]
}`

func writeSchemaFile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questionnaire.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write schema file: %v", err)
	}
	return path
}

func TestLoadValidSchema(t *testing.T) {
	schema, err := Load(writeSchemaFile(t, sampleDoc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := schema.QuestionCount(); got != 3 {
		t.Fatalf("question count = %d, want 3", got)
	}
	if schema.Areas[0].ID != "A" || schema.Areas[1].ID != "B" {
		t.Fatalf("area order not preserved: %s, %s", schema.Areas[0].ID, schema.Areas[1].ID)
	}

	// Untyped question defaults to single.
	b1 := schema.Areas[1].Questions[0]
	if b1.IsMulti() {
		t.Fatalf("B1 should default to single")
	}
}

func TestLoadDerivesOtherFlag(t *testing.T) {
	schema, err := Load(writeSchemaFile(t, sampleDoc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	a1 := schema.Areas[0].Questions[0]
	otro, ok := a1.OptionByID("A1OTRO")
	if !ok || !otro.IsOther {
		t.Fatalf("A1OTRO should be flagged as other, got %+v ok=%v", otro, ok)
	}
	plain, _ := a1.OptionByID("A1O1")
	if plain.IsOther {
		t.Fatalf("A1O1 must not be flagged as other")
	}

	// English suffix variant.
	a2 := schema.Areas[0].Questions[1]
	other, _ := a2.OptionByID("A2OTHER")
	if !other.IsOther {
		t.Fatalf("A2OTHER should be flagged as other")
	}
}

func TestValidateRejectsDuplicateQuestionIDs(t *testing.T) {
	doc := `{"areas":[
		{"id":"A","name":"a","objective":"o","questions":[{"id":"Q1","text":"t","options":[{"id":"O1","text":"x"}]}]},
		{"id":"B","name":"b","objective":"o","questions":[{"id":"Q1","text":"t","options":[{"id":"O1","text":"x"}]}]}
	]}`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatalf("expected duplicate question id error")
	}
}

func TestValidateRejectsDuplicateOptionIDs(t *testing.T) {
	doc := `{"areas":[{"id":"A","name":"a","objective":"o","questions":[
		{"id":"Q1","text":"t","options":[{"id":"O1","text":"x"},{"id":"O1","text":"y"}]}
	]}]}`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatalf("expected duplicate option id error")
	}
}

func TestLoadMissingAreas(t *testing.T) {
	_, err := Parse([]byte(`{"metadata":{"version":"1"}}`))
	if !errors.Is(err, ErrNoAreas) {
		t.Fatalf("expected ErrNoAreas, got %v", err)
	}
}

func TestCorrectionsApply(t *testing.T) {
	schema, err := Load(writeSchemaFile(t, sampleDoc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	fixes := Corrections{
		"A1": {
			Text:    "Which tool does your team use to plan work?",
			Options: map[string]string{"A1O2": "Jira Software"},
		},
		"ZZ": {Text: "no such question"},
	}

	if applied := fixes.Apply(schema); applied != 2 {
		t.Fatalf("applied = %d, want 2", applied)
	}
	a1 := schema.Areas[0].Questions[0]
	if a1.Text != "Which tool does your team use to plan work?" {
		t.Fatalf("question text not corrected: %q", a1.Text)
	}
	jira, _ := a1.OptionByID("A1O2")
	if jira.Text != "Jira Software" {
		t.Fatalf("option text not corrected: %q", jira.Text)
	}
}
