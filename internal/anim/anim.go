// Package anim interpolates a value between a start and a target over a fixed
// duration. Transitions are plain values computed from elapsed time, so they
// never block and can be redirected mid-flight.
package anim

import (
	"math"
	"time"
)

// FrameInterval is the pacing of animation frames (60 fps).
const FrameInterval = time.Second / 60

// Ease is the quadratic in-out curve. t is clamped to [0, 1].
func Ease(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Transition moves from From to To, starting at Start and lasting Duration.
// The zero Transition is settled at 0.
type Transition struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
}

// Settled returns a transition resting at v.
func Settled(v float64) Transition {
	return Transition{From: v, To: v}
}

// Value returns the interpolated value at now.
func (t Transition) Value(now time.Time) float64 {
	if t.Duration <= 0 {
		return t.To
	}
	elapsed := now.Sub(t.Start)
	if elapsed <= 0 {
		return t.From
	}
	if elapsed >= t.Duration {
		return t.To
	}
	p := float64(elapsed) / float64(t.Duration)
	return t.From + (t.To-t.From)*Ease(p)
}

// Done reports whether the transition has reached its target at now.
func (t Transition) Done(now time.Time) bool {
	return t.Duration <= 0 || !now.Before(t.Start.Add(t.Duration))
}

// Retarget starts a new transition toward to from wherever t is at now.
func (t Transition) Retarget(to float64, now time.Time, d time.Duration) Transition {
	return Transition{From: t.Value(now), To: to, Start: now, Duration: d}
}
