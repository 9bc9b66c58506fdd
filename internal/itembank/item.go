package itembank

import "path"

// Item is a single question reference in the MST design.
// Items are defined once at configuration load and never mutated.
type Item struct {
	// Exam is the source exam identifier, e.g. "prueba-invierno-2026".
	Exam string

	// ID is the item identifier within the exam, e.g. "Q28".
	ID string

	// Axis is the content axis the item assesses.
	Axis Axis

	// Skill is the cognitive skill the item assesses.
	Skill Skill

	// Weight is the normalized difficulty in (0,1). It drives both module
	// design and score weighting.
	Weight float64
}

// QTIPath returns the relative path of the item's QTI directory.
func (it Item) QTIPath() string {
	return path.Join(it.Exam, "qti", it.ID)
}

// Key returns the "exam/id" key used by the atom index.
func (it Item) Key() string {
	return it.Exam + "/" + it.ID
}

// PoolSize is the fixed number of items in every MST module.
const PoolSize = 8

// Pool is a named ordered sequence of exactly PoolSize items.
type Pool struct {
	Name  string
	Items []Item
}
