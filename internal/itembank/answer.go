package itembank

// Outcome is the tri-state result of one answered item.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeDontKnow  Outcome = "dont-know" // The "I don't know" button
)

// AllOutcomes returns all outcomes.
func AllOutcomes() []Outcome {
	return []Outcome{OutcomeCorrect, OutcomeIncorrect, OutcomeDontKnow}
}

// Answer is one student response to one item.
// Answers are created by the caller and immutable once recorded.
type Answer struct {
	Item    Item
	Outcome Outcome

	// Selected is the option label the student picked (A, B, C, D),
	// empty for dont-know.
	Selected string
}

// Correct reports whether the answer was correct.
func (a Answer) Correct() bool {
	return a.Outcome == OutcomeCorrect
}

// CountCorrect returns the number of correct answers in the slice.
func CountCorrect(answers []Answer) int {
	n := 0
	for _, a := range answers {
		if a.Correct() {
			n++
		}
	}
	return n
}
