package dynamics

import "github.com/zeusync/impulse/internal/core/vector"

// MotionController scripts the path of a controlled body. Update must not
// mutate the receiver.
type MotionController interface {
	Position() vector.Point
	Velocity() vector.Vector
	Update(dt float64) MotionController
}

var _ MotionController = SinusoidalController{}

// SinusoidalController swings around its initial position. Over one period
// the offset traces sin(t) scaled to half of each range, so the body sweeps
// the full range on each axis.
type SinusoidalController struct {
	initial         vector.Point
	offset          vector.Vector
	velocity        vector.Vector
	elapsed         float64
	period          float64
	horizontalRange float64
	verticalRange   float64
}

func NewSinusoidalController(initial vector.Point, period, horizontalRange, verticalRange float64) SinusoidalController {
	return SinusoidalController{
		initial:         initial,
		period:          period,
		horizontalRange: horizontalRange,
		verticalRange:   verticalRange,
	}
}

func (s SinusoidalController) Position() vector.Point  { return s.initial.Translate(s.offset) }
func (s SinusoidalController) Velocity() vector.Vector { return s.velocity }
func (s SinusoidalController) Elapsed() float64        { return s.elapsed }

// Update moves to the offset for the current elapsed time and reports the
// average velocity over the step.
func (s SinusoidalController) Update(dt float64) MotionController {
	factor := 0.0
	if s.period != 0 {
		factor = vector.SinDegrees(s.elapsed / s.period * 360)
	}
	offset := vector.New(factor*s.horizontalRange/2, factor*s.verticalRange/2)

	next := s
	next.offset = offset
	next.elapsed = s.elapsed + dt
	next.velocity = vector.Zero
	if dt != 0 {
		next.velocity = offset.Sub(s.offset).Div(dt)
	}
	return next
}
