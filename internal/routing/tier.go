// Package routing assigns a difficulty tier from the routing-stage result.
package routing

import "github.com/abhisek/paesdiag/internal/itembank"

// Tier is the difficulty band assigned after the routing stage.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// AllTiers returns all tiers from low to high.
func AllTiers() []Tier {
	return []Tier{TierLow, TierMedium, TierHigh}
}

// Valid reports whether t is one of the three known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierLow, TierMedium, TierHigh:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierLow:
		return "Low"
	case TierMedium:
		return "Medium"
	case TierHigh:
		return "High"
	default:
		return string(t)
	}
}

// Module returns the stage-2 module name that serves this tier.
func (t Tier) Module() string {
	switch t {
	case TierLow:
		return itembank.ModuleLow
	case TierMedium:
		return itembank.ModuleMedium
	case TierHigh:
		return itembank.ModuleHigh
	default:
		return ""
	}
}
