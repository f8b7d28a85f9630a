package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultHopConfig().Difficulty)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.0},
		{180, 0.5},
		{360, 1.0},
		{720, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.want)
		}
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultHopConfig().Difficulty)

	if got := d.Speed(1.0, 0, 0); got != 1.0 {
		t.Errorf("Speed at start = %f, expected 1.0", got)
	}
	if got := d.Speed(1.0, 360, 0); got != 2.0 {
		t.Errorf("Speed at max = %f, expected 2.0", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultHopConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(360, 0); got != 0.3 {
		t.Errorf("Level() = %f, expected fixed 0.3", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Level(0, 50); got != 0.5 {
		t.Errorf("Level() = %f, expected 0.5", got)
	}
}
