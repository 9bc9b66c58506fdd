package routing

import (
	"fmt"

	"github.com/abhisek/paesdiag/internal/itembank"
)

// OutOfRangeError indicates a routing correct-count outside [0, PoolSize].
type OutOfRangeError struct {
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("routing correct-count %d outside [0,%d]", e.Count, itembank.PoolSize)
}

// CutRange maps an inclusive correct-count range to a tier.
type CutRange struct {
	Min  int
	Max  int
	Tier Tier
}

// DefaultCuts returns the production routing cut table.
func DefaultCuts() []CutRange {
	return []CutRange{
		{Min: 0, Max: 3, Tier: TierLow},
		{Min: 4, Max: 6, Tier: TierMedium},
		{Min: 7, Max: 8, Tier: TierHigh},
	}
}

// Classifier maps a routing-stage correct-count to a tier using a cut table.
type Classifier struct {
	cuts []CutRange
}

// NewClassifier builds a classifier over the given cut table.
// The cuts must partition [0, PoolSize] with no gap or overlap.
func NewClassifier(cuts []CutRange) (*Classifier, error) {
	if err := ValidateCuts(cuts); err != nil {
		return nil, err
	}
	c := &Classifier{cuts: make([]CutRange, len(cuts))}
	copy(c.cuts, cuts)
	return c, nil
}

// NewDefaultClassifier returns a classifier over DefaultCuts.
func NewDefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultCuts())
	if err != nil {
		panic(err) // default cuts are validated by tests
	}
	return c
}

// Classify returns the tier whose cut range contains count.
// Counts outside [0, PoolSize] return an *OutOfRangeError.
func (c *Classifier) Classify(count int) (Tier, error) {
	if count < 0 || count > itembank.PoolSize {
		return "", &OutOfRangeError{Count: count}
	}
	for _, cut := range c.cuts {
		if count >= cut.Min && count <= cut.Max {
			return cut.Tier, nil
		}
	}
	// Unreachable when cuts are validated, kept for the compiler.
	return "", &OutOfRangeError{Count: count}
}

// ValidateCuts checks that cuts cover every integer in [0, PoolSize] exactly
// once and name only known tiers.
func ValidateCuts(cuts []CutRange) error {
	hits := make(map[int]int)
	for _, cut := range cuts {
		if !cut.Tier.Valid() {
			return fmt.Errorf("cut [%d,%d]: unknown tier %q", cut.Min, cut.Max, cut.Tier)
		}
		if cut.Min > cut.Max {
			return fmt.Errorf("cut [%d,%d]: empty range", cut.Min, cut.Max)
		}
		for n := cut.Min; n <= cut.Max; n++ {
			hits[n]++
		}
	}
	for n := 0; n <= itembank.PoolSize; n++ {
		switch hits[n] {
		case 0:
			return fmt.Errorf("cut table has no tier for count %d", n)
		case 1:
		default:
			return fmt.Errorf("cut table maps count %d to %d tiers", n, hits[n])
		}
	}
	return nil
}
