package chicken

import (
	"reflect"
	"testing"
	"time"
)

func TestLayoutDeterminism(t *testing.T) {
	opts := LayoutOptions{Count: 5, Spacing: 80, Offset: 100, LaneSpread: 400, Amplitude: 120, Period: 2 * time.Second}

	for _, v := range []Variant{VariantCrossing, VariantHop} {
		a := Layout(v, opts, 12345)
		b := Layout(v, opts, 12345)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: same seed produced different layouts", v)
		}
	}
}

func TestLayoutPositions(t *testing.T) {
	opts := LayoutOptions{Count: 5, Spacing: 80, Offset: 100, LaneSpread: 400}
	obstacles := Layout(VariantCrossing, opts, 1)

	want := []int{100, 180, 260, 340, 420}
	if len(obstacles) != len(want) {
		t.Fatalf("Layout() returned %d obstacles, expected %d", len(obstacles), len(want))
	}

	for i, o := range obstacles {
		if o.ID != i {
			t.Errorf("obstacle %d has ID %d", i, o.ID)
		}
		if o.Y != want[i] {
			t.Errorf("obstacle %d at Y=%d, expected %d", i, o.Y, want[i])
		}
		if o.X < -200 || o.X > 200 {
			t.Errorf("obstacle %d lane %d outside spread", i, o.X)
		}
		if o.Swing.Moving() {
			t.Errorf("crossing obstacle %d should not swing", i)
		}
	}
}

func TestLayoutHopSwings(t *testing.T) {
	opts := LayoutOptions{Count: 4, Spacing: 60, Offset: 60, Amplitude: 100, Period: 3 * time.Second}
	obstacles := Layout(VariantHop, opts, 3)

	for _, o := range obstacles {
		if !o.Swing.Moving() {
			t.Errorf("hop obstacle %d should swing", o.ID)
		}
		if o.BaseX != 0 {
			t.Errorf("hop obstacle %d base lane = %d, expected 0", o.ID, o.BaseX)
		}
		if o.X < -100 || o.X > 100 {
			t.Errorf("hop obstacle %d at X=%d beyond amplitude", o.ID, o.X)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	if got := Layout(VariantCrossing, LayoutOptions{}, 1); got != nil {
		t.Errorf("Layout() with zero count = %v, expected nil", got)
	}
}

func TestSwingAt(t *testing.T) {
	s := Swing{Amplitude: 50, Period: 4 * time.Second}

	tests := []struct {
		t    time.Duration
		want int
	}{
		{0, 0},
		{time.Second, 50},      // quarter period
		{2 * time.Second, 0},   // half period
		{3 * time.Second, -50}, // three quarters
	}

	for _, tc := range tests {
		if got := s.At(tc.t); got != tc.want {
			t.Errorf("At(%v) = %d, expected %d", tc.t, got, tc.want)
		}
	}

	still := Swing{Amplitude: 50}
	if still.At(time.Second) != 0 {
		t.Error("swing without period should not move")
	}
}
