package scoring

// DefaultTable returns the shipped weights for the planning-area questions.
// Coverage is intentionally partial: questions outside the table simply do
// not score.
func DefaultTable() Table {
	return Table{
		"A1": {"A1O1": 4, "A1O2": 3, "A1O3": 2, "A1O4": 1, "A1O5": 0},
		"A2": {"A2O1": 4, "A2O2": 3, "A2O3": 2, "A2O4": 1},
		"A3": {"A3O1": 4, "A3O2": 3, "A3O3": 1, "A3O4": 0},
		"A4": {"A4O1": 4, "A4O2": 3, "A4O3": 2, "A4O4": 1},
	}
}
