// Package fsm is a small generic state machine engine. Machines are plain
// data owned by their actor; an Engine validates queued transition requests
// against the state type's own legality method and notifies listeners.
package fsm

// State is implemented by every state value the engine can drive.
// CanTransitionTo must be pure and total.
type State[S any] interface {
	comparable
	CanTransitionTo(target S) bool
}

// Machine holds one actor's state. Current only changes through an Engine.
type Machine[S comparable] struct {
	Current     S
	Previous    S
	HasPrevious bool
	TimeInState float64
}

func NewMachine[S comparable](initial S) *Machine[S] {
	return &Machine[S]{Current: initial}
}

// Tick advances TimeInState by dt seconds.
func (m *Machine[S]) Tick(dt float64) {
	if m == nil || dt <= 0 {
		return
	}
	m.TimeInState += dt
}

func (m *Machine[S]) enter(target S) {
	m.Previous = m.Current
	m.HasPrevious = true
	m.Current = target
	m.TimeInState = 0
}

// TickAll advances every machine by dt.
func TickAll[S comparable](dt float64, machines ...*Machine[S]) {
	for _, m := range machines {
		m.Tick(dt)
	}
}
