package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/paesdiag/internal/routing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "data/pruebas/finalizadas" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.IndexPath != "data/question_atoms.json" {
		t.Errorf("IndexPath = %q", cfg.IndexPath)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
	if len(cfg.Cuts) != 0 {
		t.Errorf("Cuts = %+v, want none", cfg.Cuts)
	}

	c, err := cfg.Classifier()
	if err != nil {
		t.Fatalf("Classifier: %v", err)
	}
	tier, err := c.Classify(5)
	if err != nil || tier != routing.TierMedium {
		t.Errorf("default classifier Classify(5) = %q, %v", tier, err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PAESDIAG_INDEX_PATH", "/srv/atoms/index.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IndexPath != "/srv/atoms/index.json" {
		t.Errorf("IndexPath = %q, want env override", cfg.IndexPath)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
data_dir: /exams
db_path: /var/lib/paesdiag/meta.db
routing:
  cuts:
    - {min: 0, max: 4, tier: low}
    - {min: 5, max: 6, tier: medium}
    - {min: 7, max: 8, tier: high}
`
	if err := os.WriteFile(filepath.Join(dir, "paesdiag.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/exams" || cfg.DBPath != "/var/lib/paesdiag/meta.db" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Cuts) != 3 {
		t.Fatalf("Cuts = %+v, want 3 ranges", cfg.Cuts)
	}

	c, err := cfg.Classifier()
	if err != nil {
		t.Fatalf("Classifier: %v", err)
	}
	// The shifted cut moves 4 correct into the low tier.
	tier, err := c.Classify(4)
	if err != nil || tier != routing.TierLow {
		t.Errorf("Classify(4) = %q, %v; want low", tier, err)
	}
}

func TestLoadRejectsBadCuts(t *testing.T) {
	dir := t.TempDir()
	yaml := `
routing:
  cuts:
    - {min: 0, max: 8, tier: extreme}
`
	if err := os.WriteFile(filepath.Join(dir, "paesdiag.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an unknown tier in routing cuts")
	}
}
