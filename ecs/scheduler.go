package ecs

import (
	"fmt"
	"sort"
	"time"
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// SystemTiming is the accumulated wall time spent in one system.
type SystemTiming struct {
	Name  string
	Total time.Duration
	Calls int
}

// Scheduler runs systems in registration order. Order is part of the
// simulation contract: transition processing first, state time last.
type Scheduler struct {
	systems []System

	// Profile enables per-system timing, read back through Timings.
	Profile bool
	timings []SystemTiming
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
	s.timings = append(s.timings, SystemTiming{Name: fmt.Sprintf("%T", system)})
}

func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for i, system := range s.systems {
		if !s.Profile {
			system.Update(w)
			continue
		}
		start := time.Now()
		system.Update(w)
		s.timings[i].Total += time.Since(start)
		s.timings[i].Calls++
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// Timings returns the profiled systems, slowest first.
func (s *Scheduler) Timings() []SystemTiming {
	out := make([]SystemTiming, 0, len(s.timings))
	for _, t := range s.timings {
		if t.Calls > 0 {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}
