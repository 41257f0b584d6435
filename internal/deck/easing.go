package deck

import "math"

// easing maps normalized animation time [0,1] to eased progress [0,1]
type easing func(t float64) float64

// easeOutCubic decelerates smoothly into the target. Used for the commit
// flourish.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// easeOutBack overshoots the target slightly and springs back. Used for the
// bouncy snap-back when a gesture is cancelled.
func easeOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// settle is an in-flight animation of drag progress toward a target
type settle struct {
	from     float64
	to       float64
	elapsed  float64 // seconds
	duration float64 // seconds
	ease     easing
}

// advance steps the animation by dt seconds and returns the interpolated
// progress plus whether the animation has finished
func (s *settle) advance(dt float64) (float64, bool) {
	s.elapsed += dt
	if s.duration <= 0 || s.elapsed >= s.duration {
		return s.to, true
	}
	t := s.elapsed / s.duration
	v := s.from + (s.to-s.from)*s.ease(t)
	if math.IsNaN(v) {
		return s.to, true
	}
	return v, false
}
