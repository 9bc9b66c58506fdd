package atoms

// PlanEntry is one atom scheduled for remediation.
type PlanEntry struct {
	AtomID string
	Title  string
}

// StudyPlan groups non-mastered atoms by the instruction they need.
// Repeated atom IDs stay as separate entries: an atom missed on two questions
// needs reinforcement from both angles.
type StudyPlan struct {
	ToLearn    []PlanEntry // gaps, instruction "teach"
	ToCorrect  []PlanEntry // misconceptions, instruction "correct"
	TotalItems int
}

// BuildPlan partitions the diagnoses flagged for inclusion into a study plan.
// Mastered diagnoses are dropped.
func BuildPlan(diagnoses []Diagnosis) StudyPlan {
	var plan StudyPlan
	for _, d := range diagnoses {
		if !d.IncludeInPlan {
			continue
		}
		entry := PlanEntry{AtomID: d.AtomID, Title: d.Title}
		if d.Instruction == InstructionTeach {
			plan.ToLearn = append(plan.ToLearn, entry)
		} else {
			plan.ToCorrect = append(plan.ToCorrect, entry)
		}
	}
	plan.TotalItems = len(plan.ToLearn) + len(plan.ToCorrect)
	return plan
}
