package animation

import "math"

// RingRadius is the progress circle radius in a 100x100 viewBox.
const RingRadius = 45.0

// Ring is the SVG geometry of a circular progress bar.
type Ring struct {
	Radius float64
}

func DefaultRing() Ring {
	return Ring{Radius: RingRadius}
}

func (r Ring) Circumference() float64 {
	return 2 * math.Pi * r.Radius
}

// DashOffset is the stroke-dashoffset that fills pct percent of the ring.
// 0% yields the full circumference, 100% yields 0.
func (r Ring) DashOffset(pct int) float64 {
	p := float64(clampInt(pct, 0, 100)) / 100
	return r.Circumference() - p*r.Circumference()
}
