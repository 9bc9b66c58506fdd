// Package atoms derives knowledge-atom diagnoses and a study plan from a
// student's answers, using externally maintained question metadata.
package atoms

import "context"

// Relevance tags an atom's importance on a question. Only primary atoms are
// diagnosed; secondary and tertiary tags are incidental coverage.
const (
	RelevancePrimary   = "primary"
	RelevanceSecondary = "secondary"
	RelevanceTertiary  = "tertiary"
)

// Tag is one atom tagged on a question.
type Tag struct {
	AtomID    string `json:"atom_id"`
	Title     string `json:"atom_title"`
	Relevance string `json:"relevance"`
}

// ItemTags is the metadata record for one question.
type ItemTags struct {
	Exam   string `json:"exam"`
	ItemID string `json:"question_id"`
	Tags   []Tag  `json:"atoms"`

	// Auxiliary classification, not consumed by diagnosis.
	PrimarySkill string `json:"skill,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
}

// Metadata is the read-only question metadata collaborator.
//
// Lookups are idempotent; callers may retry or cache them freely. A nil
// record with a nil error means no metadata exists for the key, which is a
// normal outcome — diagnosis simply skips the question.
type Metadata interface {
	Lookup(ctx context.Context, exam, itemID string) (*ItemTags, error)
}
