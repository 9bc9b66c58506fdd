package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/paesdiag/internal/atoms"
	"github.com/abhisek/paesdiag/internal/itembank"
	"github.com/abhisek/paesdiag/internal/routing"
	"github.com/abhisek/paesdiag/internal/scoring"
)

// answerItems marks the first correct items correct and splits the remainder
// between incorrect and don't-know.
func answerItems(items []itembank.Item, correct int) []itembank.Answer {
	answers := make([]itembank.Answer, 0, len(items))
	for i, it := range items {
		outcome := itembank.OutcomeIncorrect
		switch {
		case i < correct:
			outcome = itembank.OutcomeCorrect
		case i%2 == 0:
			outcome = itembank.OutcomeDontKnow
		}
		answers = append(answers, itembank.Answer{Item: it, Outcome: outcome})
	}
	return answers
}

// runSession drives a full session with the given per-stage correct counts.
func runSession(t *testing.T, e *Engine, routingCorrect, stage2Correct int) *Result {
	t.Helper()

	tier, err := e.SubmitRouting(answerItems(e.RoutingItems(), routingCorrect))
	if err != nil {
		t.Fatalf("SubmitRouting: %v", err)
	}
	if got, ok := e.Tier(); !ok || got != tier {
		t.Fatalf("Tier() = %q, %v after routing", got, ok)
	}

	items, err := e.Stage2Items()
	if err != nil {
		t.Fatalf("Stage2Items: %v", err)
	}
	if err := e.SubmitStage2(answerItems(items, stage2Correct)); err != nil {
		t.Fatalf("SubmitStage2: %v", err)
	}

	res, err := e.Result(context.Background())
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	return res
}

func TestSessionRoutesToTier(t *testing.T) {
	tests := []struct {
		name           string
		routingCorrect int
		wantTier       routing.Tier
		wantModule     string
	}{
		{"zero correct routes low", 0, routing.TierLow, itembank.ModuleLow},
		{"three correct routes low", 3, routing.TierLow, itembank.ModuleLow},
		{"four correct routes medium", 4, routing.TierMedium, itembank.ModuleMedium},
		{"six correct routes medium", 6, routing.TierMedium, itembank.ModuleMedium},
		{"seven correct routes high", 7, routing.TierHigh, itembank.ModuleHigh},
		{"perfect routing routes high", 8, routing.TierHigh, itembank.ModuleHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(Options{})
			tier, err := e.SubmitRouting(answerItems(e.RoutingItems(), tt.routingCorrect))
			if err != nil {
				t.Fatalf("SubmitRouting: %v", err)
			}
			if tier != tt.wantTier {
				t.Errorf("tier = %q, want %q", tier, tt.wantTier)
			}

			items, err := e.Stage2Items()
			if err != nil {
				t.Fatalf("Stage2Items: %v", err)
			}
			pool, _ := itembank.Default().Pool(tt.wantModule)
			if len(items) != len(pool.Items) || items[0] != pool.Items[0] {
				t.Errorf("stage-2 items are not the %s pool", tt.wantModule)
			}
		})
	}
}

func TestSessionResult(t *testing.T) {
	e := New(Options{})
	res := runSession(t, e, 5, 6)

	if res.SessionID != e.SessionID() || res.SessionID == "" {
		t.Errorf("SessionID = %q", res.SessionID)
	}
	if res.Tier != routing.TierMedium {
		t.Errorf("Tier = %q, want medium", res.Tier)
	}
	if res.RoutingCorrect != 5 || res.Stage2Correct != 6 || res.TotalCorrect != 11 {
		t.Errorf("correct counts = %d/%d/%d, want 5/6/11",
			res.RoutingCorrect, res.Stage2Correct, res.TotalCorrect)
	}
	if res.Estimator != "weighted" {
		t.Errorf("Estimator = %q, want weighted", res.Estimator)
	}
	if res.Level != scoring.LevelFor(res.Score.Point) {
		t.Errorf("Level = %q inconsistent with point %d", res.Level, res.Score.Point)
	}
	if len(res.Answers) != 2*itembank.PoolSize {
		t.Errorf("Answers has %d entries, want %d", len(res.Answers), 2*itembank.PoolSize)
	}
	if res.Score.Low > res.Score.Point || res.Score.Point > res.Score.High {
		t.Errorf("ill-formed score %+v", res.Score)
	}

	// No metadata store was configured, so no diagnoses and an empty plan.
	if len(res.Diagnoses) != 0 || res.Plan.TotalItems != 0 {
		t.Errorf("diagnoses without metadata: %d entries, plan %d",
			len(res.Diagnoses), res.Plan.TotalItems)
	}
}

func TestSessionDeterministic(t *testing.T) {
	a := runSession(t, New(Options{}), 7, 4)
	b := runSession(t, New(Options{}), 7, 4)

	if a.Score != b.Score || a.Tier != b.Tier || a.Level != b.Level {
		t.Errorf("same answers produced different results: %+v vs %+v", a.Score, b.Score)
	}
}

func TestBreakdownsCoverAllDimensions(t *testing.T) {
	res := runSession(t, New(Options{}), 2, 3)

	if len(res.ByAxis) != len(itembank.AllAxes()) {
		t.Errorf("ByAxis has %d entries, want %d", len(res.ByAxis), len(itembank.AllAxes()))
	}
	if len(res.BySkill) != len(itembank.AllSkills()) {
		t.Errorf("BySkill has %d entries, want %d", len(res.BySkill), len(itembank.AllSkills()))
	}

	axisTotal := 0
	for _, b := range res.ByAxis {
		axisTotal += b.Total
		if b.Correct+b.Incorrect+b.DontKnow != b.Total {
			t.Errorf("inconsistent breakdown %+v", b)
		}
	}
	if axisTotal != 2*itembank.PoolSize {
		t.Errorf("axis totals sum to %d, want %d", axisTotal, 2*itembank.PoolSize)
	}
}

func TestSubmitRoutingCountMismatch(t *testing.T) {
	for _, n := range []int{0, 7, 9} {
		e := New(Options{})
		items := e.RoutingItems()
		short := answerItems(items, 0)
		if n <= len(short) {
			short = short[:n]
		} else {
			short = append(short, itembank.Answer{})
		}

		_, err := e.SubmitRouting(short)
		var cme *CountMismatchError
		if !errors.As(err, &cme) {
			t.Fatalf("SubmitRouting with %d answers: error = %v, want *CountMismatchError", n, err)
		}
		if cme.Got != n || cme.Stage != "routing" {
			t.Errorf("CountMismatchError = %+v", cme)
		}

		// The rejection leaves the session in the routing phase.
		if e.Phase() != PhaseRouting {
			t.Errorf("phase after rejection = %s, want routing", e.Phase())
		}
	}
}

func TestSubmitStage2CountMismatch(t *testing.T) {
	e := New(Options{})
	if _, err := e.SubmitRouting(answerItems(e.RoutingItems(), 4)); err != nil {
		t.Fatal(err)
	}
	items, err := e.Stage2Items()
	if err != nil {
		t.Fatal(err)
	}

	err = e.SubmitStage2(answerItems(items, 0)[:5])
	var cme *CountMismatchError
	if !errors.As(err, &cme) {
		t.Fatalf("error = %v, want *CountMismatchError", err)
	}
	if cme.Stage != "stage2" || cme.Got != 5 {
		t.Errorf("CountMismatchError = %+v", cme)
	}
}

func TestSequenceGuards(t *testing.T) {
	e := New(Options{})

	var seq *SequenceError
	if _, err := e.Stage2Items(); !errors.As(err, &seq) {
		t.Errorf("Stage2Items before routing: error = %v, want *SequenceError", err)
	}
	if err := e.SubmitStage2(nil); !errors.As(err, &seq) {
		t.Errorf("SubmitStage2 before routing: error = %v, want *SequenceError", err)
	}

	if _, err := e.SubmitRouting(answerItems(e.RoutingItems(), 4)); err != nil {
		t.Fatal(err)
	}
	if _, err := e.SubmitRouting(answerItems(e.RoutingItems(), 4)); !errors.As(err, &seq) {
		t.Errorf("double SubmitRouting: error = %v, want *SequenceError", err)
	}

	items, err := e.Stage2Items()
	if err != nil {
		t.Fatal(err)
	}
	if err := e.SubmitStage2(answerItems(items, 4)); err != nil {
		t.Fatal(err)
	}
	if err := e.SubmitStage2(answerItems(items, 4)); !errors.As(err, &seq) {
		t.Errorf("double SubmitStage2: error = %v, want *SequenceError", err)
	}
}

func TestResultBeforeComplete(t *testing.T) {
	e := New(Options{})

	var ise *IncompleteSessionError
	if _, err := e.Result(context.Background()); !errors.As(err, &ise) {
		t.Fatalf("error = %v, want *IncompleteSessionError", err)
	}
	if ise.Phase != PhaseNotStarted {
		t.Errorf("IncompleteSessionError.Phase = %s", ise.Phase)
	}

	if _, err := e.SubmitRouting(answerItems(e.RoutingItems(), 4)); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Result(context.Background()); !errors.As(err, &ise) {
		t.Errorf("after routing: error = %v, want *IncompleteSessionError", err)
	}
}

func TestPhaseProgression(t *testing.T) {
	e := New(Options{})
	if e.Phase() != PhaseNotStarted {
		t.Fatalf("initial phase = %s", e.Phase())
	}

	e.RoutingItems()
	if e.Phase() != PhaseRouting {
		t.Errorf("after RoutingItems: phase = %s, want routing", e.Phase())
	}

	if _, err := e.SubmitRouting(answerItems(e.RoutingItems(), 6)); err != nil {
		t.Fatal(err)
	}
	if e.Phase() != PhaseRouted {
		t.Errorf("after SubmitRouting: phase = %s, want routed", e.Phase())
	}

	items, err := e.Stage2Items()
	if err != nil {
		t.Fatal(err)
	}
	if e.Phase() != PhaseStage2 {
		t.Errorf("after Stage2Items: phase = %s, want stage2", e.Phase())
	}

	if err := e.SubmitStage2(answerItems(items, 6)); err != nil {
		t.Fatal(err)
	}
	if e.Phase() != PhaseComplete {
		t.Errorf("after SubmitStage2: phase = %s, want complete", e.Phase())
	}
}

// sessionMetadata tags one primary atom on every question of one exam.
type sessionMetadata struct{}

func (sessionMetadata) Lookup(_ context.Context, exam, itemID string) (*atoms.ItemTags, error) {
	return &atoms.ItemTags{
		Exam:   exam,
		ItemID: itemID,
		Tags: []atoms.Tag{
			{AtomID: "atom-" + itemID, Title: "Atom for " + itemID, Relevance: atoms.RelevancePrimary},
		},
	}, nil
}

func TestResultWithDiagnoses(t *testing.T) {
	e := New(Options{Metadata: sessionMetadata{}})
	res := runSession(t, e, 3, 2)

	if len(res.Diagnoses) != 2*itembank.PoolSize {
		t.Fatalf("got %d diagnoses, want %d", len(res.Diagnoses), 2*itembank.PoolSize)
	}

	mastered := 0
	for _, d := range res.Diagnoses {
		if d.Status == atoms.StatusMastered {
			mastered++
			if d.IncludeInPlan {
				t.Errorf("mastered atom %s flagged for the plan", d.AtomID)
			}
		}
	}
	if mastered != res.TotalCorrect {
		t.Errorf("mastered diagnoses = %d, want %d", mastered, res.TotalCorrect)
	}
	if res.Plan.TotalItems != len(res.Diagnoses)-mastered {
		t.Errorf("plan has %d items, want %d", res.Plan.TotalItems, len(res.Diagnoses)-mastered)
	}
}

func TestTableEstimatorOption(t *testing.T) {
	e := New(Options{Estimator: scoring.TableEstimator{}})
	res := runSession(t, e, 4, 4)

	if res.Estimator != "table" {
		t.Errorf("Estimator = %q, want table", res.Estimator)
	}
	// 8 total correct in the medium tier sits in the 8-9 row.
	want := scoring.Estimate{Point: 550, Low: 500, High: 600}
	if res.Score != want {
		t.Errorf("Score = %+v, want %+v", res.Score, want)
	}
}

func TestSessionIDsUnique(t *testing.T) {
	a, b := New(Options{}), New(Options{})
	if a.SessionID() == b.SessionID() {
		t.Error("two engines share a session ID")
	}
}
