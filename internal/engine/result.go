package engine

import (
	"math"

	"github.com/abhisek/paesdiag/internal/atoms"
	"github.com/abhisek/paesdiag/internal/itembank"
	"github.com/abhisek/paesdiag/internal/routing"
	"github.com/abhisek/paesdiag/internal/scoring"
)

// Band labels a per-dimension accuracy for reporting.
type Band string

const (
	BandStrength   Band = "strength"   // ≥ 75% correct
	BandDeveloping Band = "developing" // ≥ 50% correct
	BandReinforce  Band = "reinforce"  // below 50%
)

// Breakdown is the per-axis or per-skill tally over the combined answers.
type Breakdown struct {
	Correct   int
	Incorrect int
	DontKnow  int
	Total     int
}

// Accuracy returns correct/total, 0 when nothing was observed.
func (b Breakdown) Accuracy() float64 {
	if b.Total == 0 {
		return 0
	}
	return float64(b.Correct) / float64(b.Total)
}

// Percent returns the accuracy rounded to a whole percentage.
func (b Breakdown) Percent() int {
	return int(math.Round(b.Accuracy() * 100))
}

// Band returns the reporting band for this breakdown.
func (b Breakdown) Band() Band {
	switch p := b.Percent(); {
	case p >= 75:
		return BandStrength
	case p >= 50:
		return BandDeveloping
	default:
		return BandReinforce
	}
}

// Result is the immutable snapshot computed from a completed session.
type Result struct {
	SessionID string
	Tier      routing.Tier

	RoutingCorrect int
	Stage2Correct  int
	TotalCorrect   int

	Score     scoring.Estimate
	Level     scoring.Level
	Estimator string

	// ByAxis and BySkill carry an entry for every enumerated value, zeroed
	// when no answered item exercised it.
	ByAxis  map[itembank.Axis]Breakdown
	BySkill map[itembank.Skill]Breakdown

	Answers   []itembank.Answer
	Diagnoses []atoms.Diagnosis
	Plan      atoms.StudyPlan
}

// axisBreakdown tallies the combined answers per content axis.
func axisBreakdown(answers []itembank.Answer) map[itembank.Axis]Breakdown {
	out := make(map[itembank.Axis]Breakdown, len(itembank.AllAxes()))
	for _, axis := range itembank.AllAxes() {
		out[axis] = Breakdown{}
	}
	for _, a := range answers {
		b := out[a.Item.Axis]
		b.Total++
		switch a.Outcome {
		case itembank.OutcomeCorrect:
			b.Correct++
		case itembank.OutcomeDontKnow:
			b.DontKnow++
		default:
			b.Incorrect++
		}
		out[a.Item.Axis] = b
	}
	return out
}

// skillBreakdown tallies the combined answers per cognitive skill.
func skillBreakdown(answers []itembank.Answer) map[itembank.Skill]Breakdown {
	out := make(map[itembank.Skill]Breakdown, len(itembank.AllSkills()))
	for _, skill := range itembank.AllSkills() {
		out[skill] = Breakdown{}
	}
	for _, a := range answers {
		b := out[a.Item.Skill]
		b.Total++
		switch a.Outcome {
		case itembank.OutcomeCorrect:
			b.Correct++
		case itembank.OutcomeDontKnow:
			b.DontKnow++
		default:
			b.Incorrect++
		}
		out[a.Item.Skill] = b
	}
	return out
}
