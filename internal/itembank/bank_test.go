package itembank

import "testing"

func TestDefaultBankValid(t *testing.T) {
	b := Default()
	if err := b.Validate(); err != nil {
		t.Fatalf("default bank invalid: %v", err)
	}
}

func TestDefaultBankPools(t *testing.T) {
	b := Default()
	for _, name := range []string{ModuleRouting, ModuleLow, ModuleMedium, ModuleHigh} {
		p, ok := b.Pool(name)
		if !ok {
			t.Fatalf("pool %q missing", name)
		}
		if len(p.Items) != PoolSize {
			t.Errorf("pool %q has %d items, want %d", name, len(p.Items), PoolSize)
		}
	}
	if got := len(b.Modules()); got != 4 {
		t.Errorf("Modules() = %d pools, want 4", got)
	}
	if got := len(b.Items()); got != 4*PoolSize {
		t.Errorf("Items() = %d items, want %d", got, 4*PoolSize)
	}
}

func TestRoutingPoolAxisBalance(t *testing.T) {
	// The routing module covers each axis with exactly two items so every
	// axis contributes equally to tier assignment.
	dist := make(map[Axis]int)
	for _, it := range Default().Routing().Items {
		dist[it.Axis]++
	}
	for _, axis := range AllAxes() {
		if dist[axis] != 2 {
			t.Errorf("routing pool has %d %s items, want 2", dist[axis], axis)
		}
	}
}

func TestStage2PoolsShareAxisDistribution(t *testing.T) {
	b := Default()
	ref := make(map[Axis]int)
	for _, it := range mustPool(t, b, ModuleLow).Items {
		ref[it.Axis]++
	}
	for _, name := range []string{ModuleMedium, ModuleHigh} {
		dist := make(map[Axis]int)
		for _, it := range mustPool(t, b, name).Items {
			dist[it.Axis]++
		}
		for _, axis := range AllAxes() {
			if dist[axis] != ref[axis] {
				t.Errorf("pool %q has %d %s items, low pool has %d",
					name, dist[axis], axis, ref[axis])
			}
		}
	}
}

func TestNewRejectsInvalidPools(t *testing.T) {
	short := Pool{Name: "R1", Items: []Item{
		{Exam: "e", ID: "Q1", Axis: AxisAlgebra, Skill: SkillSolve, Weight: 0.5},
	}}
	if _, err := New([]Pool{short}); err == nil {
		t.Error("New accepted a short pool")
	}

	bad := Default().Routing()
	bad.Items = append([]Item(nil), bad.Items...)
	bad.Items[0].Weight = 1.5
	if _, err := New([]Pool{bad}); err == nil {
		t.Error("New accepted an out-of-range weight")
	}

	dup := Default().Routing()
	if _, err := New([]Pool{dup, dup}); err == nil {
		t.Error("New accepted duplicate pool names")
	}
}

func TestAnswerCorrect(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    bool
	}{
		{OutcomeCorrect, true},
		{OutcomeIncorrect, false},
		{OutcomeDontKnow, false},
	}
	for _, tt := range tests {
		a := Answer{Outcome: tt.outcome}
		if got := a.Correct(); got != tt.want {
			t.Errorf("Answer{%q}.Correct() = %v, want %v", tt.outcome, got, tt.want)
		}
	}
}

func TestAllOutcomes(t *testing.T) {
	want := []Outcome{OutcomeCorrect, OutcomeIncorrect, OutcomeDontKnow}
	got := AllOutcomes()
	if len(got) != len(want) {
		t.Fatalf("AllOutcomes() has %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllOutcomes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCountCorrect(t *testing.T) {
	answers := []Answer{
		{Outcome: OutcomeCorrect},
		{Outcome: OutcomeIncorrect},
		{Outcome: OutcomeCorrect},
		{Outcome: OutcomeDontKnow},
	}
	if got := CountCorrect(answers); got != 2 {
		t.Errorf("CountCorrect = %d, want 2", got)
	}
	if got := CountCorrect(nil); got != 0 {
		t.Errorf("CountCorrect(nil) = %d, want 0", got)
	}
}

func TestItemKeyAndPath(t *testing.T) {
	it := Item{Exam: "seleccion-regular-2025", ID: "Q15"}
	if got := it.Key(); got != "seleccion-regular-2025/Q15" {
		t.Errorf("Key() = %q", got)
	}
	if got := it.QTIPath(); got != "seleccion-regular-2025/qti/Q15" {
		t.Errorf("QTIPath() = %q", got)
	}
}

func mustPool(t *testing.T, b *Bank, name string) Pool {
	t.Helper()
	p, ok := b.Pool(name)
	if !ok {
		t.Fatalf("pool %q missing", name)
	}
	return p
}
