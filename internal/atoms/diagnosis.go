package atoms

import "github.com/abhisek/paesdiag/internal/itembank"

// Status classifies a student's mastery of one atom from one response.
type Status string

const (
	StatusMastered      Status = "mastered"      // answered correctly
	StatusGap           Status = "gap"           // answered "I don't know"
	StatusMisconception Status = "misconception" // answered incorrectly
)

// Instruction is the remediation to apply to a non-mastered atom.
type Instruction string

const (
	InstructionTeach   Instruction = "teach"
	InstructionCorrect Instruction = "correct"
)

// Diagnosis is the mastery verdict for one atom exercised by one answer.
//
// The same atom ID can appear in several diagnoses when it is tagged on more
// than one answered question; each occurrence is independent evidence and is
// deliberately not deduplicated.
type Diagnosis struct {
	AtomID        string
	Title         string
	Outcome       itembank.Outcome
	Status        Status
	IncludeInPlan bool
	Instruction   Instruction // empty when the atom is mastered
}

// classify maps a response outcome to the atom verdict.
func classify(outcome itembank.Outcome) (Status, bool, Instruction) {
	switch outcome {
	case itembank.OutcomeCorrect:
		return StatusMastered, false, ""
	case itembank.OutcomeDontKnow:
		return StatusGap, true, InstructionTeach
	default:
		return StatusMisconception, true, InstructionCorrect
	}
}
