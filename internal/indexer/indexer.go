// Package indexer builds the question→atom index file from the per-question
// metadata_tags.json documents maintained alongside the QTI item bank.
//
// This is an offline batch step: the runtime engine only ever reads the
// resulting index (or a database imported from it).
package indexer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/abhisek/paesdiag/internal/itembank"
	"github.com/abhisek/paesdiag/internal/store"
)

// metadataTags mirrors the relevant parts of a metadata_tags.json document.
type metadataTags struct {
	SelectedAtoms []struct {
		AtomID    string `json:"atom_id"`
		AtomTitle string `json:"atom_title"`
		Relevance string `json:"relevance"`
	} `json:"selected_atoms"`
	PrimarySkill struct {
		PrimarySkill string `json:"habilidad_principal"`
	} `json:"habilidad_principal"`
	Difficulty struct {
		Level string `json:"level"`
	} `json:"difficulty"`
}

// Indexer extracts atom tags for every item in a bank.
type Indexer struct {
	// BaseDir is the root of the finalized exams tree,
	// laid out as <BaseDir>/<exam>/qti/<question_id>/metadata_tags.json.
	BaseDir string

	// Bank lists the items to index. Defaults to itembank.Default().
	Bank *itembank.Bank

	// Log receives progress and summary output. Defaults to zap.NewNop().
	Log *zap.Logger
}

// Build walks the bank and assembles the index. Items whose metadata file is
// missing are recorded in the summary and skipped; a malformed file fails the
// build, since the offline step is the place to catch bad metadata.
func (ix *Indexer) Build() (*store.Index, error) {
	bank := ix.Bank
	if bank == nil {
		bank = itembank.Default()
	}
	log := ix.Log
	if log == nil {
		log = zap.NewNop()
	}

	idx := &store.Index{
		QuestionAtoms: make(map[string]store.IndexEntry),
		AtomQuestions: make(map[string][]store.IndexRef),
	}

	for _, module := range bank.Modules() {
		pool, _ := bank.Pool(module)
		for _, item := range pool.Items {
			path := filepath.Join(ix.BaseDir, item.Exam, "qti", item.ID, "metadata_tags.json")

			raw, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				log.Warn("metadata not found",
					zap.String("module", module),
					zap.String("question", item.Key()))
				idx.Metadata.MissingQuestions = append(idx.Metadata.MissingQuestions, item.Key())
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}

			var tags metadataTags
			if err := json.Unmarshal(raw, &tags); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}

			entry := store.IndexEntry{
				Module:     module,
				Exam:       item.Exam,
				QuestionID: item.ID,
				Skill:      tags.PrimarySkill.PrimarySkill,
				Difficulty: tags.Difficulty.Level,
			}
			for _, a := range tags.SelectedAtoms {
				relevance := a.Relevance
				if relevance == "" {
					relevance = "primary"
				}
				entry.Atoms = append(entry.Atoms, store.IndexAtom{
					AtomID:    a.AtomID,
					Title:     a.AtomTitle,
					Relevance: relevance,
				})
			}

			idx.QuestionAtoms[item.Key()] = entry
			log.Debug("indexed question",
				zap.String("module", module),
				zap.String("question", item.Key()),
				zap.Int("atoms", len(entry.Atoms)))
		}
	}

	buildReverse(idx)
	summarize(idx)

	log.Info("index built",
		zap.Int("questions", idx.Metadata.TotalQuestions),
		zap.Int("associations", idx.Metadata.TotalAtomAssociations),
		zap.Int("unique_atoms", idx.Metadata.UniqueAtomsCovered),
		zap.Int("missing", len(idx.Metadata.MissingQuestions)))

	return idx, nil
}

// WriteFile builds the index and writes it as indented JSON to path.
func (ix *Indexer) WriteFile(path string) (*store.Index, error) {
	idx, err := ix.Build()
	if err != nil {
		return nil, err
	}

	if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	raw, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode index: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}
	return idx, nil
}

// buildReverse fills the atom→questions map from the forward map.
func buildReverse(idx *store.Index) {
	keys := make([]string, 0, len(idx.QuestionAtoms))
	for key := range idx.QuestionAtoms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entry := idx.QuestionAtoms[key]
		for _, a := range entry.Atoms {
			idx.AtomQuestions[a.AtomID] = append(idx.AtomQuestions[a.AtomID], store.IndexRef{
				QuestionKey: key,
				Module:      entry.Module,
				Relevance:   a.Relevance,
			})
		}
	}
}

// summarize recomputes the index metadata totals.
func summarize(idx *store.Index) {
	idx.Metadata.TotalQuestions = len(idx.QuestionAtoms)

	total := 0
	unique := make(map[string]struct{})
	for _, entry := range idx.QuestionAtoms {
		total += len(entry.Atoms)
		for _, a := range entry.Atoms {
			unique[a.AtomID] = struct{}{}
		}
	}
	idx.Metadata.TotalAtomAssociations = total
	idx.Metadata.UniqueAtomsCovered = len(unique)
}
