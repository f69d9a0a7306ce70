// Command schemacheck loads and validates a questionnaire file and prints a
// structural summary: handy when editing the schema or the score table.
package main

import (
	"flag"
	"fmt"
	"log"

	"assessment-backend/internal/questionnaire"
	"assessment-backend/internal/scoring"
)

func main() {
	path := flag.String("file", "devops_questionnaire.json", "questionnaire JSON file")
	flag.Parse()

	schema, err := questionnaire.Load(*path)
	if err != nil {
		log.Fatalf("schemacheck: %v", err)
	}

	table := scoring.DefaultTable()

	fmt.Printf("questionnaire %s (version %s, language %s)\n", *path, schema.Metadata.Version, schema.Metadata.Language)
	fmt.Printf("areas: %d, questions: %d\n\n", len(schema.Areas), schema.QuestionCount())

	singles, multis, others, scored := 0, 0, 0, 0
	for _, area := range schema.Areas {
		fmt.Printf("  %s. %s — %d questions\n", area.ID, area.Name, len(area.Questions))
		for _, q := range area.Questions {
			if q.IsMulti() {
				multis++
			} else {
				singles++
			}
			if _, ok := table[q.ID]; ok {
				scored++
			}
			for _, opt := range q.Options {
				if opt.IsOther {
					others++
				}
			}
		}
	}

	fmt.Printf("\nsingle-choice: %d, multi-select: %d\n", singles, multis)
	fmt.Printf("\"other\" options: %d\n", others)
	fmt.Printf("questions covered by the score table: %d of %d\n", scored, schema.QuestionCount())
}
