// Package motion drives the ambient background animation. A Driver keeps one
// tween per decorative element and, on every frame, eases each element toward
// a random target; finished tweens immediately pick a new target so the motion
// never settles. A Loop supplies the frames.
package motion

import (
	"math/rand/v2"
	"time"
)

// Source is a uniform random source in [0, 1).
type Source interface {
	Float64() float64
}

// Tween is the per-element animation state.
type Tween struct {
	From     Transform
	To       Transform
	Start    time.Time
	Duration time.Duration
}

// Progress returns the elapsed fraction of the tween at now, clamped to [0, 1].
func (tw Tween) Progress(now time.Time) float64 {
	if tw.Duration <= 0 {
		return 1
	}
	t := float64(now.Sub(tw.Start)) / float64(tw.Duration)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// At returns the eased transform of the tween at now.
func (tw Tween) At(now time.Time) Transform {
	return Interpolate(tw.From, tw.To, EaseInOutCubic(tw.Progress(now)))
}

// Option configures a Driver.
type Option func(*Driver)

// WithRand replaces the random source. Tests pass a seeded generator.
func WithRand(src Source) Option {
	return func(d *Driver) {
		if src != nil {
			d.rnd = src
		}
	}
}

// WithStartJitter bounds the random delay before each element's first tween.
func WithStartJitter(max time.Duration) Option {
	return func(d *Driver) {
		if max < 0 {
			max = 0
		}
		d.jitter = max
	}
}

// WithReducedMotion disables the driver entirely.
func WithReducedMotion(reduced bool) Option {
	return func(d *Driver) {
		d.reduced = reduced
	}
}

// Driver animates a fixed set of elements. It is not safe for concurrent use.
type Driver struct {
	ranges  []Range
	tweens  []Tween
	current []Transform
	rnd     Source
	jitter  time.Duration
	reduced bool
	running bool
}

// NewDriver creates a driver with one element per range. Every element starts
// at the identity transform.
func NewDriver(ranges []Range, opts ...Option) *Driver {
	d := &Driver{
		ranges:  append([]Range(nil), ranges...),
		current: make([]Transform, len(ranges)),
		rnd:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		jitter:  DefaultStartJitter,
	}
	for i := range d.current {
		d.current[i] = Identity()
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Len returns the number of animated elements.
func (d *Driver) Len() int { return len(d.ranges) }

// Running reports whether Start succeeded.
func (d *Driver) Running() bool { return d.running }

// Reduced reports whether the reduced-motion preference disabled the driver.
func (d *Driver) Reduced() bool { return d.reduced }

// Start initialises every element's first tween relative to now. It returns
// false without touching any state when reduced motion is requested or there
// is nothing to animate; the caller must then not schedule frames.
func (d *Driver) Start(now time.Time) bool {
	if d.reduced || len(d.ranges) == 0 {
		return false
	}
	d.tweens = make([]Tween, len(d.ranges))
	for i := range d.ranges {
		d.tweens[i] = Tween{
			From:     Identity(),
			To:       d.target(i),
			Start:    now.Add(d.delay()),
			Duration: d.duration(i),
		}
		d.current[i] = Identity()
	}
	d.running = true
	return true
}

// Advance computes every element's transform at now and re-targets elements
// whose tween has completed. The returned slice is owned by the driver.
func (d *Driver) Advance(now time.Time) []Transform {
	if !d.running {
		return d.current
	}
	for i := range d.tweens {
		tw := &d.tweens[i]
		t := tw.Progress(now)
		d.current[i] = Interpolate(tw.From, tw.To, EaseInOutCubic(t))
		if t >= 1 {
			tw.From = tw.To
			tw.To = d.target(i)
			tw.Duration = d.duration(i)
			tw.Start = now
		}
	}
	return d.current
}

// Transforms returns the most recently computed transforms.
func (d *Driver) Transforms() []Transform {
	return d.current
}

// Tween returns a copy of element i's animation state.
func (d *Driver) Tween(i int) (Tween, bool) {
	if i < 0 || i >= len(d.tweens) {
		return Tween{}, false
	}
	return d.tweens[i], true
}

func (d *Driver) target(i int) Transform {
	r := d.ranges[i]
	return Transform{
		X:        d.between(-r.DX, r.DX),
		Y:        d.between(-r.DY, r.DY),
		Scale:    d.between(r.ScaleMin, r.ScaleMax),
		Rotation: d.between(-r.Rotation, r.Rotation),
	}
}

func (d *Driver) duration(i int) time.Duration {
	r := d.ranges[i]
	return time.Duration(d.between(float64(r.MinDuration), float64(r.MaxDuration)))
}

func (d *Driver) delay() time.Duration {
	if d.jitter <= 0 {
		return 0
	}
	return time.Duration(d.between(0, float64(d.jitter)))
}

func (d *Driver) between(lo, hi float64) float64 {
	return d.rnd.Float64()*(hi-lo) + lo
}

// Signal reports the host's reduced-motion preference.
type Signal func() (bool, error)

// PrefersReduced queries signal once. A missing or failing signal counts as no
// preference, so animation stays enabled.
func PrefersReduced(signal Signal) bool {
	if signal == nil {
		return false
	}
	reduced, err := signal()
	if err != nil {
		return false
	}
	return reduced
}
