// Package animation models the skill ring animation: a percentage that eases
// from 0 to its target once the skills section has been seen, after a
// per-ring start delay.
//
// An Animator moves through four states:
//
//	Idle      not yet visible, value 0
//	Armed     visibility observed, waiting out the delay, value 0
//	Animating easing toward the target
//	Settled   value == target, terminal
//
// The machine is driven by explicit timestamps so it can be evaluated for any
// instant. Run drives the same machine with real timers.
package animation

import (
	"context"
	"math"
	"time"
)

const (
	DefaultThreshold = 0.3
	DefaultDuration  = time.Second
	DefaultStagger   = 200 * time.Millisecond
)

type State int

const (
	Idle State = iota
	Armed
	Animating
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Animating:
		return "animating"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Easing maps progress in [0,1] to eased progress in [0,1]. It must be
// non-decreasing with f(0) == 0 and f(1) == 1.
type Easing func(p float64) float64

// EaseOutCubic decelerates toward the end, like CSS ease-out.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// Linear is the identity easing.
func Linear(p float64) float64 {
	return p
}

type Option func(*Animator)

// WithThreshold sets the visible-area fraction required to arm.
func WithThreshold(f float64) Option {
	return func(a *Animator) { a.threshold = clampFloat(f, 0, 1) }
}

// WithDuration sets how long the easing takes once the delay elapsed.
func WithDuration(d time.Duration) Option {
	return func(a *Animator) {
		if d >= 0 {
			a.duration = d
		}
	}
}

func WithEasing(e Easing) Option {
	return func(a *Animator) {
		if e != nil {
			a.easing = e
		}
	}
}

// Animator is the transient animation state of one skill ring. It is not safe
// for concurrent use; one goroutine (or one render) owns it.
type Animator struct {
	target    int
	delay     time.Duration
	threshold float64
	duration  time.Duration
	easing    Easing

	armedAt time.Time
}

// New returns an idle animator. The target is clamped to [0,100] and a
// negative delay is treated as zero.
func New(target int, delay time.Duration, opts ...Option) *Animator {
	if delay < 0 {
		delay = 0
	}
	a := &Animator{
		target:    clampInt(target, 0, 100),
		delay:     delay,
		threshold: DefaultThreshold,
		duration:  DefaultDuration,
		easing:    EaseOutCubic,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Animator) Target() int { return a.target }
func (a *Animator) Delay() time.Duration { return a.delay }
func (a *Animator) Threshold() float64 { return a.threshold }
func (a *Animator) Duration() time.Duration { return a.duration }
func (a *Animator) Visible() bool { return !a.armedAt.IsZero() }

// Observe feeds a visibility signal: the fraction of the region currently in
// view. The first signal at or above the threshold arms the animator; every
// later signal is ignored. It reports whether this call armed it.
func (a *Animator) Observe(ratio float64, now time.Time) bool {
	if a.Visible() || ratio <= 0 || ratio < a.threshold {
		return false
	}
	a.armedAt = now
	return true
}

// State reports the machine state at now.
func (a *Animator) State(now time.Time) State {
	if !a.Visible() {
		return Idle
	}
	start := a.armedAt.Add(a.delay)
	switch {
	case now.Before(start):
		return Armed
	case !now.Before(start.Add(a.duration)):
		return Settled
	default:
		return Animating
	}
}

// Value is the displayed percentage at now. It starts at 0, never decreases as
// now advances, and equals the target once settled.
func (a *Animator) Value(now time.Time) int {
	switch a.State(now) {
	case Idle, Armed:
		return 0
	case Settled:
		return a.target
	}
	p := float64(now.Sub(a.armedAt.Add(a.delay))) / float64(a.duration)
	v := int(math.Round(float64(a.target) * a.easing(clampFloat(p, 0, 1))))
	return clampInt(v, 0, a.target)
}

// Run drives the animator with real timers until it settles, ctx is cancelled
// or signals is closed before the ring was ever seen. emit receives every
// distinct value, ending with the target. The delay timer and the frame
// ticker are stopped on every return path. Signals sent after arming are not
// read, so senders should not block on an unbuffered channel.
func (a *Animator) Run(ctx context.Context, signals <-chan float64, frame time.Duration, emit func(int)) error {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	for !a.Visible() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ratio, ok := <-signals:
			if !ok {
				return nil
			}
			a.Observe(ratio, time.Now())
		}
	}

	if wait := time.Until(a.armedAt.Add(a.delay)); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := -1
	for {
		now := time.Now()
		if v := a.Value(now); v != last {
			emit(v)
			last = v
		}
		if a.State(now) == Settled {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Stagger returns the start delay of the index-th ring: index*step, so delays
// strictly increase with the index for any positive step.
func Stagger(index int, step time.Duration) time.Duration {
	if index < 0 {
		return 0
	}
	return time.Duration(index) * step
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
