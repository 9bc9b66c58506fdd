package scoring

// Level is the pedagogical band a score falls in.
type Level string

const (
	LevelVeryEarly         Level = "very-early"
	LevelEarly             Level = "early"
	LevelLowerIntermediate Level = "lower-intermediate"
	LevelIntermediate      Level = "intermediate"
	LevelUpperIntermediate Level = "upper-intermediate"
	LevelHigh              Level = "high"
	LevelVeryHigh          Level = "very-high"
)

// LevelFor returns the pedagogical level for a point score.
func LevelFor(score int) Level {
	switch {
	case score < 450:
		return LevelVeryEarly
	case score < 500:
		return LevelEarly
	case score < 550:
		return LevelLowerIntermediate
	case score < 600:
		return LevelIntermediate
	case score < 650:
		return LevelUpperIntermediate
	case score < 700:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}

// DisplayName returns a human-readable name for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelVeryEarly:
		return "Very Early"
	case LevelEarly:
		return "Early"
	case LevelLowerIntermediate:
		return "Lower Intermediate"
	case LevelIntermediate:
		return "Intermediate"
	case LevelUpperIntermediate:
		return "Upper Intermediate"
	case LevelHigh:
		return "High"
	case LevelVeryHigh:
		return "Very High"
	default:
		return string(l)
	}
}
