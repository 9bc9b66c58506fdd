// Package scoring estimates a PAES score from a set of answered items.
//
// Two strategies implement Estimator: the weighted formula (current) and the
// lookup table (deprecated, kept for compatibility). Callers pick one
// explicitly; the two are expected to diverge.
package scoring

import (
	"fmt"

	"github.com/abhisek/paesdiag/internal/itembank"
	"github.com/abhisek/paesdiag/internal/routing"
)

// Scale bounds of the PAES M1 score.
const (
	ScaleMin = 100
	ScaleMax = 1000
)

// InvalidTierError indicates a tier value outside the known set.
type InvalidTierError struct {
	Tier routing.Tier
}

func (e *InvalidTierError) Error() string {
	return fmt.Sprintf("invalid tier %q", string(e.Tier))
}

// Estimate is a point score with its confidence interval, all within
// [ScaleMin, ScaleMax].
type Estimate struct {
	Point int
	Low   int
	High  int
}

// Estimator computes a score estimate from a student's answered items.
type Estimator interface {
	// Name returns a short identifier for the strategy, e.g. "weighted".
	Name() string

	// Estimate computes the score for a student routed to tier from their
	// combined answers. Returns *InvalidTierError for unknown tiers.
	Estimate(tier routing.Tier, answers []itembank.Answer) (Estimate, error)
}

// clamp bounds v to the score scale.
func clamp(v int) int {
	if v < ScaleMin {
		return ScaleMin
	}
	if v > ScaleMax {
		return ScaleMax
	}
	return v
}
