package component

// Swing is the timer of the attack in progress. It is re-armed every time
// the owner enters the wind-up phase; HitApplied is only cleared there.
type Swing struct {
	Timer      float64
	Duration   float64
	HitDelay   float64
	BaseAngle  float64
	HitApplied bool
	Armed      bool
}

// Progress is the normalized swing time, for animation consumers.
func (s *Swing) Progress() float64 {
	if s == nil || s.Duration <= 0 {
		return 0
	}
	p := s.Timer / s.Duration
	if p > 1 {
		return 1
	}
	return p
}

var SwingComponent = NewComponent[Swing]()
