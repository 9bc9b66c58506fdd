package store

// indexSchema is the JSON schema the atom index file must satisfy.
// Kept permissive on metadata so older index builds still load.
var indexSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"metadata": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"total_questions":         map[string]any{"type": "integer"},
				"total_atom_associations": map[string]any{"type": "integer"},
				"unique_atoms_covered":    map[string]any{"type": "integer"},
				"missing_questions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
		"question_atoms": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"module":      map[string]any{"type": "string"},
					"exam":        map[string]any{"type": "string"},
					"question_id": map[string]any{"type": "string"},
					"atoms": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"atom_id":    map[string]any{"type": "string"},
								"atom_title": map[string]any{"type": "string"},
								"relevance":  map[string]any{"type": "string"},
							},
							"required": []any{"atom_id"},
						},
					},
					"skill":      map[string]any{"type": []any{"string", "null"}},
					"difficulty": map[string]any{"type": []any{"string", "null"}},
				},
				"required": []any{"exam", "question_id", "atoms"},
			},
		},
		"atom_to_questions": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_key": map[string]any{"type": "string"},
						"module":       map[string]any{"type": "string"},
						"relevance":    map[string]any{"type": "string"},
					},
					"required": []any{"question_key"},
				},
			},
		},
	},
	"required": []any{"question_atoms"},
}
