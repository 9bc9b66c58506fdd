package itembank

// Module names of the four MST pools.
const (
	ModuleRouting = "R1"
	ModuleLow     = "A2"
	ModuleMedium  = "B2"
	ModuleHigh    = "C2"
)

// seedRouting is the routing module every student answers first.
// Item selection v2.0 (2026-01-09), optimized for atom coverage.
var seedRouting = Pool{
	Name: ModuleRouting,
	Items: []Item{
		{Exam: "Prueba-invierno-2025", ID: "Q28", Axis: AxisAlgebra, Skill: SkillSolve, Weight: 0.45},
		{Exam: "prueba-invierno-2026", ID: "Q31", Axis: AxisAlgebra, Skill: SkillModel, Weight: 0.55},
		{Exam: "prueba-invierno-2026", ID: "Q23", Axis: AxisNumbers, Skill: SkillArgue, Weight: 0.45},
		{Exam: "seleccion-regular-2025", ID: "Q15", Axis: AxisNumbers, Skill: SkillArgue, Weight: 0.55},
		{Exam: "Prueba-invierno-2025", ID: "Q46", Axis: AxisGeometry, Skill: SkillArgue, Weight: 0.45},
		{Exam: "prueba-invierno-2026", ID: "Q45", Axis: AxisGeometry, Skill: SkillArgue, Weight: 0.55},
		{Exam: "prueba-invierno-2026", ID: "Q58", Axis: AxisProbability, Skill: SkillRepresent, Weight: 0.45},
		{Exam: "seleccion-regular-2026", ID: "Q60", Axis: AxisProbability, Skill: SkillSolve, Weight: 0.45},
	},
}

// seedLow is the stage-2 module for the low tier (0-3 correct in routing).
var seedLow = Pool{
	Name: ModuleLow,
	Items: []Item{
		{Exam: "Prueba-invierno-2025", ID: "Q40", Axis: AxisAlgebra, Skill: SkillSolve, Weight: 0.25},
		{Exam: "seleccion-regular-2026", ID: "Q35", Axis: AxisAlgebra, Skill: SkillModel, Weight: 0.25},
		{Exam: "prueba-invierno-2026", ID: "Q40", Axis: AxisAlgebra, Skill: SkillSolve, Weight: 0.25},
		{Exam: "seleccion-regular-2025", ID: "Q10", Axis: AxisNumbers, Skill: SkillSolve, Weight: 0.30},
		{Exam: "Prueba-invierno-2025", ID: "Q6", Axis: AxisNumbers, Skill: SkillSolve, Weight: 0.30},
		{Exam: "seleccion-regular-2025", ID: "Q63", Axis: AxisGeometry, Skill: SkillRepresent, Weight: 0.30},
		{Exam: "prueba-invierno-2026", ID: "Q64", Axis: AxisProbability, Skill: SkillArgue, Weight: 0.35},
		{Exam: "seleccion-regular-2025", ID: "Q54", Axis: AxisProbability, Skill: SkillSolve, Weight: 0.25},
	},
}

// seedMedium is the stage-2 module for the medium tier (4-6 correct in routing).
var seedMedium = Pool{
	Name: ModuleMedium,
	Items: []Item{
		{Exam: "prueba-invierno-2026", ID: "Q42", Axis: AxisAlgebra, Skill: SkillModel, Weight: 0.45},
		{Exam: "seleccion-regular-2025", ID: "Q38", Axis: AxisAlgebra, Skill: SkillSolve, Weight: 0.55},
		{Exam: "seleccion-regular-2025", ID: "Q36", Axis: AxisAlgebra, Skill: SkillModel, Weight: 0.55},
		{Exam: "seleccion-regular-2025", ID: "Q3", Axis: AxisNumbers, Skill: SkillArgue, Weight: 0.55},
		{Exam: "Prueba-invierno-2025", ID: "Q22", Axis: AxisNumbers, Skill: SkillModel, Weight: 0.45},
		{Exam: "seleccion-regular-2025", ID: "Q60", Axis: AxisGeometry, Skill: SkillSolve, Weight: 0.45},
		{Exam: "seleccion-regular-2025", ID: "Q55", Axis: AxisProbability, Skill: SkillSolve, Weight: 0.55},
		{Exam: "Prueba-invierno-2025", ID: "Q65", Axis: AxisProbability, Skill: SkillRepresent, Weight: 0.45},
	},
}

// seedHigh is the stage-2 module for the high tier (7-8 correct in routing).
var seedHigh = Pool{
	Name: ModuleHigh,
	Items: []Item{
		{Exam: "seleccion-regular-2026", ID: "Q59", Axis: AxisAlgebra, Skill: SkillSolve, Weight: 0.60},
		{Exam: "seleccion-regular-2026", ID: "Q11", Axis: AxisAlgebra, Skill: SkillModel, Weight: 0.55},
		{Exam: "Prueba-invierno-2025", ID: "Q33", Axis: AxisAlgebra, Skill: SkillModel, Weight: 0.60},
		{Exam: "Prueba-invierno-2025", ID: "Q56", Axis: AxisNumbers, Skill: SkillArgue, Weight: 0.65},
		{Exam: "seleccion-regular-2026", ID: "Q23", Axis: AxisNumbers, Skill: SkillSolve, Weight: 0.55},
		{Exam: "Prueba-invierno-2025", ID: "Q50", Axis: AxisGeometry, Skill: SkillRepresent, Weight: 0.55},
		{Exam: "Prueba-invierno-2025", ID: "Q61", Axis: AxisProbability, Skill: SkillArgue, Weight: 0.65},
		{Exam: "prueba-invierno-2026", ID: "Q60", Axis: AxisProbability, Skill: SkillArgue, Weight: 0.55},
	},
}
