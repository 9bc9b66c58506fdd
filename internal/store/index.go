// Package store provides the question-metadata lookups consumed by
// diagnosis: a JSON atom-index file and a SQLite database, both implementing
// atoms.Metadata.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/paesdiag/internal/atoms"
)

// IndexAtom is one atom tag inside the index file.
type IndexAtom struct {
	AtomID    string `json:"atom_id"`
	Title     string `json:"atom_title,omitempty"`
	Relevance string `json:"relevance"`
}

// IndexEntry is the per-question record of the index file.
type IndexEntry struct {
	Module     string      `json:"module"`
	Exam       string      `json:"exam"`
	QuestionID string      `json:"question_id"`
	Atoms      []IndexAtom `json:"atoms"`
	Skill      string      `json:"skill,omitempty"`
	Difficulty string      `json:"difficulty,omitempty"`
}

// IndexRef points from an atom back to a question that exercises it.
type IndexRef struct {
	QuestionKey string `json:"question_key"`
	Module      string `json:"module"`
	Relevance   string `json:"relevance"`
}

// IndexMeta summarizes an index build.
type IndexMeta struct {
	TotalQuestions        int      `json:"total_questions"`
	TotalAtomAssociations int      `json:"total_atom_associations"`
	UniqueAtomsCovered    int      `json:"unique_atoms_covered"`
	MissingQuestions      []string `json:"missing_questions"`
}

// Index is the on-disk question→atom index produced by the offline builder.
type Index struct {
	Metadata      IndexMeta             `json:"metadata"`
	QuestionAtoms map[string]IndexEntry `json:"question_atoms"`
	AtomQuestions map[string][]IndexRef `json:"atom_to_questions"`
}

// compiledIndexSchema caches the compiled index schema.
var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func indexFileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		raw, err := json.Marshal(indexSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal index schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse index schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://question-atoms.json"
		if err := c.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// LoadIndex reads and validates an index file.
func LoadIndex(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	return ParseIndex(raw)
}

// ParseIndex validates raw index JSON against the index schema and decodes it.
func ParseIndex(raw []byte) (*Index, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid index JSON: %w", err)
	}

	sch, err := indexFileSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("index schema validation: %w", err)
	}

	var idx Index
	if err := json.Unmarshal(raw, &idx); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	return &idx, nil
}

// IndexStore serves metadata lookups from an in-memory index.
type IndexStore struct {
	byKey map[string]atoms.ItemTags
}

var _ atoms.Metadata = (*IndexStore)(nil)

// OpenIndex loads the index file at path into an IndexStore.
func OpenIndex(path string) (*IndexStore, error) {
	idx, err := LoadIndex(path)
	if err != nil {
		return nil, err
	}
	return NewIndexStore(idx), nil
}

// NewIndexStore builds an IndexStore from a parsed index.
func NewIndexStore(idx *Index) *IndexStore {
	s := &IndexStore{byKey: make(map[string]atoms.ItemTags, len(idx.QuestionAtoms))}
	for key, entry := range idx.QuestionAtoms {
		tags := make([]atoms.Tag, 0, len(entry.Atoms))
		for _, a := range entry.Atoms {
			tags = append(tags, atoms.Tag{
				AtomID:    a.AtomID,
				Title:     a.Title,
				Relevance: a.Relevance,
			})
		}
		s.byKey[key] = atoms.ItemTags{
			Exam:         entry.Exam,
			ItemID:       entry.QuestionID,
			Tags:         tags,
			PrimarySkill: entry.Skill,
			Difficulty:   entry.Difficulty,
		}
	}
	return s
}

// Lookup returns the tags for exam/itemID, or (nil, nil) if unindexed.
func (s *IndexStore) Lookup(_ context.Context, exam, itemID string) (*atoms.ItemTags, error) {
	rec, ok := s.byKey[exam+"/"+itemID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Len returns the number of indexed questions.
func (s *IndexStore) Len() int {
	return len(s.byKey)
}
