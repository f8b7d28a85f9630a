package chicken

import (
	"math"
	"math/rand"
	"time"
)

// Swing describes a horizontal oscillation around an obstacle's base lane.
type Swing struct {
	Amplitude int           // Peak distance from the base lane
	Period    time.Duration // Time for one full swing
	Offset    float64       // Phase offset in radians
}

// Moving reports whether the swing displaces the obstacle at all.
func (s Swing) Moving() bool {
	return s.Amplitude != 0 && s.Period > 0
}

// At returns the displacement after t of swinging.
func (s Swing) At(t time.Duration) int {
	if !s.Moving() {
		return 0
	}
	angle := 2*math.Pi*float64(t)/float64(s.Period) + s.Offset
	return int(math.Round(float64(s.Amplitude) * math.Sin(angle)))
}

// Obstacle is a crocodile on the course.
type Obstacle struct {
	ID    int   // Stable index in generation order
	X     int   // Current lane position (display only for crossing)
	Y     int   // Position along the course
	BaseX int   // Lane the swing oscillates around
	Swing Swing // Zero value for static obstacles
}

// moveTo places the obstacle where its swing puts it after t.
func (o *Obstacle) moveTo(t time.Duration) {
	o.X = o.BaseX + o.Swing.At(t)
}

// LayoutOptions parameterize the obstacle generator.
type LayoutOptions struct {
	Count      int           // Number of obstacles
	Spacing    int           // Distance between consecutive obstacles
	Offset     int           // Position of the first obstacle
	LaneSpread int           // Width of the random lane band (crossing)
	Amplitude  int           // Swing amplitude (hop)
	Period     time.Duration // Swing period (hop)
}

// Layout generates the initial obstacle sequence. The result depends only on
// the variant, options and seed, so regenerating restores the original course.
func Layout(v Variant, opts LayoutOptions, seed int64) []Obstacle {
	if opts.Count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	obstacles := make([]Obstacle, opts.Count)

	for i := range obstacles {
		o := Obstacle{
			ID: i,
			Y:  opts.Offset + i*opts.Spacing,
		}

		switch v {
		case VariantHop:
			o.Swing = Swing{
				Amplitude: opts.Amplitude,
				Period:    opts.Period,
				Offset:    rng.Float64() * 2 * math.Pi,
			}
		default:
			if opts.LaneSpread > 0 {
				o.BaseX = rng.Intn(opts.LaneSpread+1) - opts.LaneSpread/2
			}
		}

		o.moveTo(0)
		obstacles[i] = o
	}

	return obstacles
}
