package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultStep is the per-tick change of a pulsing channel.
const DefaultStep = 0.005

// Pulse bounces a value between Min and Max by Step per tick. Direction
// flips once the value passes Max or reaches Min, so it may overshoot
// Max by up to one step.
type Pulse struct {
	Value    float32
	Step     float32
	Min, Max float32
	inc      float32
}

// NewPulse starts at min and climbs towards max.
func NewPulse(min, max, step float32) *Pulse {
	return &Pulse{Value: min, Step: step, Min: min, Max: max}
}

// Advance moves the value one step and returns it.
func (p *Pulse) Advance() float32 {
	if p.Value > p.Max {
		p.inc = -p.Step
	} else if p.Value <= p.Min {
		p.inc = p.Step
	}
	p.Value += p.inc
	return p.Value
}

// Clamped is Value limited to [Min, Max].
func (p *Pulse) Clamped() float32 {
	return math32.Max(p.Min, math32.Min(p.Max, p.Value))
}

// Tint replaces the red channel of base with the clamped pulse value.
func (p *Pulse) Tint(base mgl32.Vec4) mgl32.Vec4 {
	base[0] = p.Clamped()
	return base
}
