package scoring

import (
	"errors"
	"testing"

	"github.com/abhisek/paesdiag/internal/itembank"
	"github.com/abhisek/paesdiag/internal/routing"
)

func correctAnswers(n int) []itembank.Answer {
	answers := make([]itembank.Answer, n)
	for i := range answers {
		answers[i] = itembank.Answer{Outcome: itembank.OutcomeCorrect}
	}
	return answers
}

func TestTableEstimate(t *testing.T) {
	tests := []struct {
		name    string
		tier    routing.Tier
		correct int
		want    Estimate
	}{
		{"low floor", routing.TierLow, 0, Estimate{150, 100, 200}},
		{"low mid band", routing.TierLow, 6, Estimate{350, 300, 400}},
		{"low ceiling", routing.TierLow, 16, Estimate{675, 625, 700}},
		{"medium first row", routing.TierMedium, 4, Estimate{400, 350, 450}},
		{"medium mid band", routing.TierMedium, 10, Estimate{625, 575, 675}},
		{"medium ceiling", routing.TierMedium, 16, Estimate{825, 775, 850}},
		{"high first row", routing.TierHigh, 7, Estimate{525, 475, 575}},
		{"high mid band", routing.TierHigh, 12, Estimate{675, 625, 725}},
		{"high ceiling", routing.TierHigh, 16, Estimate{900, 850, 950}},
	}

	est := TableEstimator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := est.Estimate(tt.tier, correctAnswers(tt.correct))
			if err != nil {
				t.Fatalf("Estimate() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Estimate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTableClampsBelowFirstRow(t *testing.T) {
	// A student routed to medium or high can still collapse in stage 2 and
	// land under the table's first row; they get the lowest covered band.
	tests := []struct {
		tier    routing.Tier
		correct int
		want    Estimate
	}{
		{routing.TierMedium, 0, Estimate{400, 350, 450}},
		{routing.TierMedium, 3, Estimate{400, 350, 450}},
		{routing.TierHigh, 2, Estimate{525, 475, 575}},
	}

	est := TableEstimator{}
	for _, tt := range tests {
		got, err := est.Estimate(tt.tier, correctAnswers(tt.correct))
		if err != nil {
			t.Fatalf("Estimate(%s, %d) error: %v", tt.tier, tt.correct, err)
		}
		if got != tt.want {
			t.Errorf("Estimate(%s, %d) = %+v, want %+v", tt.tier, tt.correct, got, tt.want)
		}
	}
}

func TestTableInvalidTier(t *testing.T) {
	_, err := TableEstimator{}.Estimate("extreme", nil)
	var ite *InvalidTierError
	if !errors.As(err, &ite) {
		t.Fatalf("error = %v, want *InvalidTierError", err)
	}
}

func TestEstimatorNames(t *testing.T) {
	if got := (WeightedEstimator{}).Name(); got != "weighted" {
		t.Errorf("WeightedEstimator.Name() = %q", got)
	}
	if got := (TableEstimator{}).Name(); got != "table" {
		t.Errorf("TableEstimator.Name() = %q", got)
	}
}
