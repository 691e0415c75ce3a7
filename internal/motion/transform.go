package motion

import (
	"fmt"
	"time"
)

// Transform is the visual state of one animated element: translation as a
// percentage of its own size, a scale multiplier and a rotation in degrees.
type Transform struct {
	X        float64
	Y        float64
	Scale    float64
	Rotation float64
}

// Identity is the untransformed state.
func Identity() Transform {
	return Transform{Scale: 1}
}

// String renders the transform as a single CSS-style transform expression.
func (t Transform) String() string {
	return fmt.Sprintf("translate(%.2f%%, %.2f%%) scale(%.3f) rotate(%.2fdeg)", t.X, t.Y, t.Scale, t.Rotation)
}

// Range bounds the random targets drawn for one element.
type Range struct {
	DX          float64
	DY          float64
	ScaleMin    float64
	ScaleMax    float64
	Rotation    float64
	MinDuration time.Duration
	MaxDuration time.Duration
}

const (
	defaultScaleMin    = 0.98
	defaultScaleMax    = 1.08
	defaultRotation    = 4
	defaultMinDuration = 2200 * time.Millisecond
	defaultMaxDuration = 5200 * time.Millisecond

	// DefaultStartJitter is the upper bound of each element's start delay.
	DefaultStartJitter = 800 * time.Millisecond
)

// DefaultRanges returns the ranges for n elements. Odd elements wander a
// little further than even ones.
func DefaultRanges(n int) []Range {
	ranges := make([]Range, n)
	for i := range ranges {
		dx, dy := 12.0, 8.0
		if i%2 == 1 {
			dx, dy = 16, 10
		}
		ranges[i] = Range{
			DX:          dx,
			DY:          dy,
			ScaleMin:    defaultScaleMin,
			ScaleMax:    defaultScaleMax,
			Rotation:    defaultRotation,
			MinDuration: defaultMinDuration,
			MaxDuration: defaultMaxDuration,
		}
	}
	return ranges
}

// EaseInOutCubic accelerates through the first half and decelerates through
// the second. e(0)=0, e(0.5)=0.5, e(1)=1.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Lerp interpolates between a and b. The endpoints are reproduced exactly.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Interpolate blends every component of two transforms.
func Interpolate(from, to Transform, t float64) Transform {
	return Transform{
		X:        Lerp(from.X, to.X, t),
		Y:        Lerp(from.Y, to.Y, t),
		Scale:    Lerp(from.Scale, to.Scale, t),
		Rotation: Lerp(from.Rotation, to.Rotation, t),
	}
}
