package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/abhisek/paesdiag/internal/atoms"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS question_atoms (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	exam        TEXT NOT NULL,
	question_id TEXT NOT NULL,
	module      TEXT NOT NULL DEFAULT '',
	skill       TEXT NOT NULL DEFAULT '',
	difficulty  TEXT NOT NULL DEFAULT '',
	atom_id     TEXT NOT NULL,
	atom_title  TEXT NOT NULL DEFAULT '',
	relevance   TEXT NOT NULL DEFAULT 'primary'
);
CREATE INDEX IF NOT EXISTS idx_question_atoms_key
	ON question_atoms (exam, question_id);
`

// SQLiteStore serves metadata lookups from a SQLite database, for
// deployments where the index outgrows a single JSON file.
type SQLiteStore struct {
	db *sql.DB
}

var _ atoms.Metadata = (*SQLiteStore)(nil)

// OpenSQLite opens (and if needed creates) the metadata database at dsn.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Lookup returns the tags for exam/itemID, or (nil, nil) when the question
// has no rows.
func (s *SQLiteStore) Lookup(ctx context.Context, exam, itemID string) (*atoms.ItemTags, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT skill, difficulty, atom_id, atom_title, relevance
		FROM question_atoms
		WHERE exam = ? AND question_id = ?
		ORDER BY id`, exam, itemID)
	if err != nil {
		return nil, fmt.Errorf("query question_atoms: %w", err)
	}
	defer rows.Close()

	var rec *atoms.ItemTags
	for rows.Next() {
		var skill, difficulty string
		var tag atoms.Tag
		if err := rows.Scan(&skill, &difficulty, &tag.AtomID, &tag.Title, &tag.Relevance); err != nil {
			return nil, fmt.Errorf("scan question_atoms: %w", err)
		}
		if rec == nil {
			rec = &atoms.ItemTags{
				Exam:         exam,
				ItemID:       itemID,
				PrimarySkill: skill,
				Difficulty:   difficulty,
			}
		}
		rec.Tags = append(rec.Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate question_atoms: %w", err)
	}
	return rec, nil
}

// ImportIndex replaces the database contents with the given index.
func (s *SQLiteStore) ImportIndex(ctx context.Context, idx *Index) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM question_atoms`); err != nil {
		return fmt.Errorf("clear question_atoms: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO question_atoms
			(exam, question_id, module, skill, difficulty, atom_id, atom_title, relevance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range idx.QuestionAtoms {
		for _, a := range entry.Atoms {
			if _, err := stmt.ExecContext(ctx,
				entry.Exam, entry.QuestionID, entry.Module,
				entry.Skill, entry.Difficulty,
				a.AtomID, a.Title, a.Relevance,
			); err != nil {
				return fmt.Errorf("insert %s/%s: %w", entry.Exam, entry.QuestionID, err)
			}
		}
	}

	return tx.Commit()
}

// applyPragmas configures SQLite for single-user read-mostly access.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the metadata database path in priority order:
// 1. PAESDIAG_DB environment variable
// 2. $XDG_DATA_HOME/paesdiag/paesdiag.db
// 3. ~/.local/share/paesdiag/paesdiag.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PAESDIAG_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "paesdiag", "paesdiag.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
