package portfolio

// Fade rates in opacity units per second.
const (
	heroFadeRate   = 0.9 // ~1s
	promptFadeRate = 1.4 // ~0.7s
	modalFadeRate  = 1.4 // ~0.7s
	menuFadeRate   = 2.0 // ~0.5s
	heroDimmed     = 0.1 // hero opacity once the game has started
)

// Fade moves an opacity linearly towards its target.
type Fade struct {
	Value  float64
	Target float64
	Rate   float64
}

// NewFade returns a fade resting at v.
func NewFade(v, rate float64) Fade {
	return Fade{Value: v, Target: v, Rate: rate}
}

// Step moves Value towards Target by at most Rate*dt.
func (f *Fade) Step(dt float64) {
	d := f.Rate * dt
	switch {
	case f.Value < f.Target:
		f.Value = min(f.Value+d, f.Target)
	case f.Value > f.Target:
		f.Value = max(f.Value-d, f.Target)
	}
}

// Jump sets Value without animating.
func (f *Fade) Jump(v float64) { f.Value = v }

// Done reports whether the fade has reached its target.
func (f Fade) Done() bool { return f.Value == f.Target }
