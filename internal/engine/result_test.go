package engine

import "testing"

func TestBreakdownBand(t *testing.T) {
	tests := []struct {
		name        string
		correct     int
		total       int
		wantPercent int
		wantBand    Band
	}{
		{"perfect", 8, 8, 100, BandStrength},
		{"strength boundary", 3, 4, 75, BandStrength},
		{"strength boundary eighths", 6, 8, 75, BandStrength},
		{"rounds up into strength", 7, 8, 88, BandStrength},
		{"just under strength", 5, 7, 71, BandDeveloping},
		{"developing boundary", 2, 4, 50, BandDeveloping},
		{"rounds up within developing", 5, 8, 63, BandDeveloping},
		{"below developing", 1, 4, 25, BandReinforce},
		{"nothing correct", 0, 8, 0, BandReinforce},
		{"nothing observed", 0, 0, 0, BandReinforce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Breakdown{Correct: tt.correct, Total: tt.total}
			if got := b.Percent(); got != tt.wantPercent {
				t.Errorf("Percent() = %d, want %d", got, tt.wantPercent)
			}
			if got := b.Band(); got != tt.wantBand {
				t.Errorf("Band() = %q, want %q", got, tt.wantBand)
			}
		})
	}
}

func TestBreakdownAccuracyZeroTotal(t *testing.T) {
	b := Breakdown{}
	if got := b.Accuracy(); got != 0 {
		t.Errorf("Accuracy() = %v, want 0", got)
	}
}

func TestResultAxisBands(t *testing.T) {
	// A perfect session marks every axis a strength; an all-wrong session
	// marks every axis reinforce.
	res := runSession(t, New(Options{}), 8, 8)
	for axis, b := range res.ByAxis {
		if b.Band() != BandStrength {
			t.Errorf("perfect session: axis %s band = %q, want strength", axis, b.Band())
		}
	}

	res = runSession(t, New(Options{}), 0, 0)
	for axis, b := range res.ByAxis {
		if b.Band() != BandReinforce {
			t.Errorf("all-wrong session: axis %s band = %q, want reinforce", axis, b.Band())
		}
	}
}
