package scoring

import (
	"assessment-backend/internal/answers"
	"assessment-backend/internal/questionnaire"
)

// areaMaxScore is the fixed per-area ceiling: 10 questions at 4 points each.
// It is applied regardless of how many questions the area actually holds,
// which is a documented approximation of the shipped formula.
const areaMaxScore = 40

// Table maps question id to option id to awarded points. It is plain
// configuration handed to Score so tests and deployments can substitute
// their own weights. Only scalar option ids are keyed: multi-select answers
// are outside the table's model and score nothing.
type Table map[string]map[string]int

// Result carries per-area and overall maturity percentages in [0,100].
type Result struct {
	AreaPercent map[string]float64
	Overall     float64
}

// Score computes maturity percentages from the record and table. Questions
// that are unanswered, multi-select, or absent from the table contribute to
// neither the achieved total nor the possible total, so they never inflate
// the overall denominator. An empty denominator yields 0, not an error.
func Score(schema *questionnaire.Schema, record *answers.Record, table Table) Result {
	areaScores := make(map[string]int, len(schema.Areas))
	totalAchieved := 0
	totalPossible := 0

	for _, area := range schema.Areas {
		areaScores[area.ID] = 0
		for _, q := range area.Questions {
			points, ok := table[q.ID]
			if !ok {
				continue
			}
			answer, ok := record.Answer(q.ID)
			if !ok || answer.Multi {
				continue
			}
			score, ok := points[answer.OptionID]
			if !ok {
				continue
			}
			areaScores[area.ID] += score
			totalAchieved += score
			totalPossible += maxPoints(points)
		}
	}

	result := Result{AreaPercent: make(map[string]float64, len(areaScores))}
	for areaID, score := range areaScores {
		percent := float64(score) / areaMaxScore * 100
		if percent > 100 {
			percent = 100
		}
		result.AreaPercent[areaID] = percent
	}
	if totalPossible > 0 {
		result.Overall = float64(totalAchieved) / float64(totalPossible) * 100
	}
	return result
}

func maxPoints(points map[string]int) int {
	max := 0
	for _, p := range points {
		if p > max {
			max = p
		}
	}
	return max
}
