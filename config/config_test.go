package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/471VE/ai-roguelike/config"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Sight.EnemyTriggerDist <= 0 {
		t.Errorf("EnemyTriggerDist = %v, want > 0", cfg.Sight.EnemyTriggerDist)
	}
	if cfg.Selector.InertiaBonus != 100 {
		t.Errorf("InertiaBonus = %v, want 100 (matching the original's inertia_amount default)", cfg.Selector.InertiaBonus)
	}
}

func TestLoadOverridesOnlyProvidedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(path, []byte("sight:\n  enemy_trigger_dist: 9.5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(path) error = %v", err)
	}
	if cfg.Sight.EnemyTriggerDist != 9.5 {
		t.Errorf("EnemyTriggerDist = %v, want 9.5", cfg.Sight.EnemyTriggerDist)
	}
	if cfg.Cooldowns.SleepTimer != 20 {
		t.Errorf("SleepTimer = %v, want the untouched default 20", cfg.Cooldowns.SleepTimer)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := config.Load("/nonexistent/path.yaml"); err == nil {
		t.Fatal("Load with a missing path should return an error")
	}
}
