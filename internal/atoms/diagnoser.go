package atoms

import (
	"context"

	"github.com/abhisek/paesdiag/internal/itembank"
)

// Diagnoser resolves answers to atom diagnoses through a Metadata store.
type Diagnoser struct {
	meta Metadata
}

// NewDiagnoser creates a Diagnoser over the given metadata store.
func NewDiagnoser(meta Metadata) *Diagnoser {
	return &Diagnoser{meta: meta}
}

// Diagnose maps each answer to zero or more atom diagnoses, one per primary
// atom tagged on the answered question.
//
// Questions with no metadata record, failed lookups, or malformed records are
// skipped: partial diagnosis coverage beats failing the whole pass.
func (d *Diagnoser) Diagnose(ctx context.Context, answers []itembank.Answer) []Diagnosis {
	var out []Diagnosis
	for _, a := range answers {
		rec, err := d.meta.Lookup(ctx, a.Item.Exam, a.Item.ID)
		if err != nil || rec == nil {
			continue
		}
		for _, tag := range rec.Tags {
			if tag.Relevance != RelevancePrimary {
				continue
			}
			if tag.AtomID == "" {
				continue
			}
			status, include, instr := classify(a.Outcome)
			out = append(out, Diagnosis{
				AtomID:        tag.AtomID,
				Title:         tag.Title,
				Outcome:       a.Outcome,
				Status:        status,
				IncludeInPlan: include,
				Instruction:   instr,
			})
		}
	}
	return out
}
