package scoring

import (
	"math"

	"github.com/abhisek/paesdiag/internal/itembank"
	"github.com/abhisek/paesdiag/internal/routing"
)

// Weighted-formula constants (v3.0). The 0.35 cut is a deliberate binary
// easy/hard split, not a continuous function of difficulty.
const (
	easyWeightCut = 0.35
	weightLow     = 1.0
	weightHigh    = 1.8

	// coverageFactor discounts for the ~10% of skill atoms the 32-item
	// design cannot reach.
	coverageFactor = 0.90

	// margin is the half-width of the reported confidence interval.
	margin = 50
)

// tierFactor scales the normalized score by the ceiling of each tier's module.
var tierFactor = map[routing.Tier]float64{
	routing.TierLow:    0.70,
	routing.TierMedium: 0.85,
	routing.TierHigh:   1.00,
}

// WeightedEstimator is the current scoring strategy:
//
//	score = 100 + 900 * achieved/total * tierFactor * coverageFactor
//
// where each answered item contributes weightLow if its difficulty weight is
// at most easyWeightCut, weightHigh otherwise.
type WeightedEstimator struct{}

var _ Estimator = WeightedEstimator{}

func (WeightedEstimator) Name() string { return "weighted" }

func (WeightedEstimator) Estimate(tier routing.Tier, answers []itembank.Answer) (Estimate, error) {
	factor, ok := tierFactor[tier]
	if !ok {
		return Estimate{}, &InvalidTierError{Tier: tier}
	}

	var achieved, total float64
	for _, a := range answers {
		w := weightHigh
		if a.Item.Weight <= easyWeightCut {
			w = weightLow
		}
		total += w
		if a.Correct() {
			achieved += w
		}
	}

	// An empty answer set scores the scale floor, not a division error.
	normalized := 0.0
	if total > 0 {
		normalized = achieved / total
	}

	raw := 100 + 900*normalized*factor*coverageFactor
	point := clamp(int(math.Round(raw)))

	return Estimate{
		Point: point,
		Low:   clamp(point - margin),
		High:  clamp(point + margin),
	}, nil
}
