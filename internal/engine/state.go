package engine

// Phase is the stage of a diagnostic session. A session only moves forward:
//
//	NotStarted → Routing → Routed → Stage2 → Complete
//
// There is no reset or replay; a new session needs a new Engine.
type Phase int

const (
	PhaseNotStarted Phase = iota // No items served yet
	PhaseRouting                 // Routing items served, answers pending
	PhaseRouted                  // Tier assigned, stage-2 items not yet served
	PhaseStage2                  // Stage-2 items served, answers pending
	PhaseComplete                // Both stages recorded; result available
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRouting:
		return "routing"
	case PhaseRouted:
		return "routed"
	case PhaseStage2:
		return "stage2"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}
