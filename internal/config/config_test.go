package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/chicken-arcade/internal/chicken"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		id   string
		want GameConfig
	}{
		{"crossing", DefaultCrossingConfig()},
		{"hop", DefaultHopConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			got, err := Default(tc.id)
			if err != nil {
				t.Fatalf("Default(%q) failed: %v", tc.id, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("embedded YAML differs from hardcoded defaults:\n got %+v\nwant %+v", got, tc.want)
			}
		})
	}
}

func TestDefaultUnknownGame(t *testing.T) {
	if _, err := Default("pong"); err == nil {
		t.Error("expected error for unknown game")
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("GetDefaultYAML should return nil for unknown game")
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("obstacles:\n  count: 3\n  spacing: 120\ncourse:\n  finish: 600\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("crossing", path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Obstacles.Count != 3 || cfg.Obstacles.Spacing != 120 {
		t.Errorf("obstacles not overridden: %+v", cfg.Obstacles)
	}
	if cfg.Course.Finish != 600 {
		t.Errorf("finish = %d, expected 600", cfg.Course.Finish)
	}
	// Untouched keys keep their defaults
	if cfg.Actor.Step != 50 || cfg.Obstacles.Offset != 100 {
		t.Errorf("defaults lost: step=%d offset=%d", cfg.Actor.Step, cfg.Obstacles.Offset)
	}
	if len(cfg.Countdown) != 2 {
		t.Errorf("countdown should keep its 2 default steps, got %d", len(cfg.Countdown))
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load("crossing", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHICKEN_OBSTACLE_COUNT", "9")
	t.Setenv("CHICKEN_COURSE_TOLERANCE", "5")

	cfg, err := Load("hop", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Obstacles.Count != 9 {
		t.Errorf("count = %d, expected env override 9", cfg.Obstacles.Count)
	}
	if cfg.Course.Tolerance != 5 {
		t.Errorf("tolerance = %d, expected env override 5", cfg.Course.Tolerance)
	}
	if cfg.Obstacles.Amplitude != 120 {
		t.Errorf("amplitude = %d, expected default 120", cfg.Obstacles.Amplitude)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".chicken", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("actor:\n  step: 40\n")
	if err := os.WriteFile(filepath.Join(dir, "crossing.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("crossing", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Actor.Step != 40 {
		t.Errorf("step = %d, expected user override 40", cfg.Actor.Step)
	}
}

func TestLoadUserConfigParseError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".chicken", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "hop.yaml")
	if err := os.WriteFile(path, []byte("actor: [not, a, map\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load("hop", "")
	if err == nil {
		t.Fatal("expected error for unparsable user config")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero step", "actor:\n  step: 0\n", "actor.step"},
		{"negative step", "actor:\n  step: -50\n", "actor.step"},
		{"zero spacing", "obstacles:\n  spacing: 0\n", "obstacles.spacing"},
		{"finish at start", "actor:\n  start: 360\n", "course.finish"},
		{"negative tolerance", "course:\n  tolerance: -1\n", "course.tolerance"},
		{"negative period", "obstacles:\n  period_ms: -10\n", "obstacles.period_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hop.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}

			_, err := Load("hop", path)
			if err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
			if !strings.HasPrefix(err.Error(), "config: ") || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, expected config error about %s", err, tc.want)
			}
		})
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHICKEN_ACTOR_STEP", "0")

	if _, err := Load("crossing", ""); err == nil {
		t.Error("expected error for CHICKEN_ACTOR_STEP=0")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	for _, cfg := range []GameConfig{DefaultCrossingConfig(), DefaultHopConfig()} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("default config invalid: %v", err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if p, ok := ParsePreset(s); !ok || string(p) != s {
			t.Errorf("ParsePreset(%q) = %q, %v", s, p, ok)
		}
	}
	if _, ok := ParsePreset(""); ok {
		t.Error("empty preset should not parse")
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultHopConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Course.Tolerance != 45 {
		t.Errorf("easy tolerance = %d, expected 45", cfg.Course.Tolerance)
	}
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0 {
		t.Errorf("easy difficulty = %+v", cfg.Difficulty)
	}

	cfg = DefaultHopConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Course.Tolerance != 20 {
		t.Errorf("hard tolerance = %d, expected 20", cfg.Course.Tolerance)
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard initial level = %f, expected 0.7", cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultHopConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestOptions(t *testing.T) {
	opts := DefaultHopConfig().Options(chicken.VariantHop, 42)

	if opts.Variant != chicken.VariantHop || opts.Seed != 42 {
		t.Errorf("variant/seed not carried: %v %d", opts.Variant, opts.Seed)
	}
	if opts.Step != 60 || opts.Finish != 360 || opts.Tolerance != 30 {
		t.Errorf("unexpected thresholds: %+v", opts)
	}
	if opts.Layout.Period != 2400*time.Millisecond {
		t.Errorf("period = %v, expected 2.4s", opts.Layout.Period)
	}
	if len(opts.Countdown) != 4 || opts.Countdown[3].At != 3*time.Second {
		t.Errorf("countdown not converted: %+v", opts.Countdown)
	}
	if opts.Messages.Missed == "" {
		t.Error("missed message not carried")
	}
}

func TestEnvHelp(t *testing.T) {
	if EnvHelp() == "" {
		t.Error("EnvHelp should describe the CHICKEN_* variables")
	}
}
