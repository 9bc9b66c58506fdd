package itembank

// Axis represents a PAES M1 content axis.
type Axis string

const (
	AxisAlgebra     Axis = "algebra-and-functions"
	AxisNumbers     Axis = "numbers"
	AxisGeometry    Axis = "geometry"
	AxisProbability Axis = "probability-and-statistics"
)

// AllAxes returns all axes in display order.
func AllAxes() []Axis {
	return []Axis{
		AxisAlgebra,
		AxisNumbers,
		AxisGeometry,
		AxisProbability,
	}
}

// AxisDisplayName returns a human-readable name for an axis.
func AxisDisplayName(a Axis) string {
	switch a {
	case AxisAlgebra:
		return "Algebra & Functions"
	case AxisNumbers:
		return "Numbers"
	case AxisGeometry:
		return "Geometry"
	case AxisProbability:
		return "Probability & Statistics"
	default:
		return string(a)
	}
}

// Skill represents a PAES M1 cognitive skill.
type Skill string

const (
	SkillSolve     Skill = "solve"
	SkillModel     Skill = "model"
	SkillRepresent Skill = "represent"
	SkillArgue     Skill = "argue"
)

// AllSkills returns all skills in display order.
func AllSkills() []Skill {
	return []Skill{
		SkillSolve,
		SkillModel,
		SkillRepresent,
		SkillArgue,
	}
}

// SkillDisplayName returns a human-readable name for a skill.
func SkillDisplayName(s Skill) string {
	switch s {
	case SkillSolve:
		return "Solve"
	case SkillModel:
		return "Model"
	case SkillRepresent:
		return "Represent"
	case SkillArgue:
		return "Argue"
	default:
		return string(s)
	}
}
