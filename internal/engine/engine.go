// Package engine orchestrates one student's two-stage diagnostic session.
//
// An Engine owns the session state for a single student and is not safe for
// concurrent use; independent sessions run on independent Engine instances.
package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisek/paesdiag/internal/atoms"
	"github.com/abhisek/paesdiag/internal/itembank"
	"github.com/abhisek/paesdiag/internal/routing"
	"github.com/abhisek/paesdiag/internal/scoring"
)

// Options configures a new Engine. Zero fields fall back to defaults.
type Options struct {
	// Bank provides the four MST pools. Defaults to itembank.Default().
	Bank *itembank.Bank

	// Classifier maps the routing correct-count to a tier.
	// Defaults to routing.NewDefaultClassifier().
	Classifier *routing.Classifier

	// Estimator computes the score estimate.
	// Defaults to scoring.WeightedEstimator.
	Estimator scoring.Estimator

	// Metadata resolves questions to tagged atoms. When nil the result
	// carries no atom diagnoses and an empty study plan.
	Metadata atoms.Metadata
}

// Engine runs the staged question flow for one session.
type Engine struct {
	sessionID  string
	bank       *itembank.Bank
	classifier *routing.Classifier
	estimator  scoring.Estimator
	diagnoser  *atoms.Diagnoser

	phase          Phase
	tier           routing.Tier
	routingAnswers []itembank.Answer
	stage2Answers  []itembank.Answer
}

// New creates an Engine for a fresh session.
func New(opts Options) *Engine {
	e := &Engine{
		sessionID:  uuid.New().String(),
		bank:       opts.Bank,
		classifier: opts.Classifier,
		estimator:  opts.Estimator,
		phase:      PhaseNotStarted,
	}
	if e.bank == nil {
		e.bank = itembank.Default()
	}
	if e.classifier == nil {
		e.classifier = routing.NewDefaultClassifier()
	}
	if e.estimator == nil {
		e.estimator = scoring.WeightedEstimator{}
	}
	if opts.Metadata != nil {
		e.diagnoser = atoms.NewDiagnoser(opts.Metadata)
	}
	return e
}

// SessionID returns the unique ID of this session.
func (e *Engine) SessionID() string { return e.sessionID }

// Phase returns the current session phase.
func (e *Engine) Phase() Phase { return e.phase }

// Tier returns the assigned tier and whether routing has completed.
func (e *Engine) Tier() (routing.Tier, bool) {
	return e.tier, e.phase >= PhaseRouted
}

// RoutingItems returns the 8 routing items. The first call moves the session
// into the routing phase.
func (e *Engine) RoutingItems() []itembank.Item {
	if e.phase == PhaseNotStarted {
		e.phase = PhaseRouting
	}
	return copyItems(e.bank.Routing().Items)
}

// SubmitRouting records the 8 routing answers, classifies the student and
// assigns the tier. A batch of any other size is rejected with
// *CountMismatchError and leaves the session unchanged.
func (e *Engine) SubmitRouting(answers []itembank.Answer) (routing.Tier, error) {
	if e.phase > PhaseRouting {
		return "", &SequenceError{Op: "submit routing", Need: "routing already recorded"}
	}
	if len(answers) != itembank.PoolSize {
		return "", &CountMismatchError{Stage: "routing", Got: len(answers)}
	}

	tier, err := e.classifier.Classify(itembank.CountCorrect(answers))
	if err != nil {
		return "", err
	}

	e.routingAnswers = append([]itembank.Answer(nil), answers...)
	e.tier = tier
	e.phase = PhaseRouted
	return tier, nil
}

// Stage2Items returns the 8 items of the module matching the assigned tier.
// Requesting them before routing completes fails with *SequenceError.
func (e *Engine) Stage2Items() ([]itembank.Item, error) {
	if e.phase < PhaseRouted {
		return nil, &SequenceError{Op: "stage-2 items", Need: "complete routing first"}
	}
	if e.phase == PhaseRouted {
		e.phase = PhaseStage2
	}
	pool, ok := e.bank.Pool(e.tier.Module())
	if !ok {
		return nil, &scoring.InvalidTierError{Tier: e.tier}
	}
	return copyItems(pool.Items), nil
}

// SubmitStage2 records the 8 stage-2 answers and completes the session.
func (e *Engine) SubmitStage2(answers []itembank.Answer) error {
	if e.phase < PhaseRouted {
		return &SequenceError{Op: "submit stage-2", Need: "complete routing first"}
	}
	if e.phase == PhaseComplete {
		return &SequenceError{Op: "submit stage-2", Need: "stage 2 already recorded"}
	}
	if len(answers) != itembank.PoolSize {
		return &CountMismatchError{Stage: "stage2", Got: len(answers)}
	}

	e.stage2Answers = append([]itembank.Answer(nil), answers...)
	e.phase = PhaseComplete
	return nil
}

// Result computes the session result. It is only available once both stages
// are recorded; earlier calls fail with *IncompleteSessionError.
func (e *Engine) Result(ctx context.Context) (*Result, error) {
	if e.phase != PhaseComplete {
		return nil, &IncompleteSessionError{Phase: e.phase}
	}

	all := make([]itembank.Answer, 0, len(e.routingAnswers)+len(e.stage2Answers))
	all = append(all, e.routingAnswers...)
	all = append(all, e.stage2Answers...)

	est, err := e.estimator.Estimate(e.tier, all)
	if err != nil {
		return nil, err
	}

	var diagnoses []atoms.Diagnosis
	if e.diagnoser != nil {
		diagnoses = e.diagnoser.Diagnose(ctx, all)
	}

	routingCorrect := itembank.CountCorrect(e.routingAnswers)
	stage2Correct := itembank.CountCorrect(e.stage2Answers)

	return &Result{
		SessionID:      e.sessionID,
		Tier:           e.tier,
		RoutingCorrect: routingCorrect,
		Stage2Correct:  stage2Correct,
		TotalCorrect:   routingCorrect + stage2Correct,
		Score:          est,
		Level:          scoring.LevelFor(est.Point),
		Estimator:      e.estimator.Name(),
		ByAxis:         axisBreakdown(all),
		BySkill:        skillBreakdown(all),
		Answers:        all,
		Diagnoses:      diagnoses,
		Plan:           atoms.BuildPlan(diagnoses),
	}, nil
}

func copyItems(items []itembank.Item) []itembank.Item {
	out := make([]itembank.Item, len(items))
	copy(out, items)
	return out
}
