package ecs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrScheduleCycle = errors.New("ecs: system ordering cycle")
	ErrUnknownLabel  = errors.New("ecs: unknown system label")
)

// Phase is one stage of the per-frame pipeline. Phases always run in
// declaration order; every system of a phase finishes before the next
// phase starts.
type Phase int

const (
	// PhaseFirst restores backed-up component values.
	PhaseFirst Phase = iota
	// PhasePreUpdate reads input and UI.
	PhasePreUpdate
	// PhaseStateTransition flushes queued state stack operations.
	PhaseStateTransition
	// PhaseUpdate runs gameplay.
	PhaseUpdate
	// PhaseSave copies gameplay values into their backups.
	PhaseSave
	// PhaseBlend applies animations on top of the saved values.
	PhaseBlend
	// PhaseFacing applies sprite facing flips.
	PhaseFacing
	// PhasePropagate recomputes derived world-space state.
	PhasePropagate
	// PhaseFinish applies cosmetic finalization.
	PhaseFinish

	phaseCount
)

var phaseNames = [...]string{
	PhaseFirst:           "First",
	PhasePreUpdate:       "PreUpdate",
	PhaseStateTransition: "StateTransition",
	PhaseUpdate:          "Update",
	PhaseSave:            "Save",
	PhaseBlend:           "Blend",
	PhaseFacing:          "Facing",
	PhasePropagate:       "Propagate",
	PhaseFinish:          "Finish",
}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Phases lists every phase in execution order.
func Phases() []Phase {
	out := make([]Phase, 0, phaseCount)
	for p := PhaseFirst; p < phaseCount; p++ {
		out = append(out, p)
	}
	return out
}

// Condition gates a system for the current frame.
type Condition func(w *World) bool

// Not inverts a condition.
func Not(c Condition) Condition {
	return func(w *World) bool { return !c(w) }
}

// Option configures a scheduled system.
type Option func(*entry)

// Label names a system (or, when shared, a set of systems) for ordering.
func Label(name string) Option {
	return func(e *entry) { e.labels = append(e.labels, name) }
}

// Before orders the system ahead of every system carrying one of labels.
func Before(labels ...string) Option {
	return func(e *entry) { e.before = append(e.before, labels...) }
}

// After orders the system behind every system carrying one of labels.
func After(labels ...string) Option {
	return func(e *entry) { e.after = append(e.after, labels...) }
}

// RunIf adds a run condition. All conditions must hold.
func RunIf(c Condition) Option {
	return func(e *entry) {
		if c != nil {
			e.conds = append(e.conds, c)
		}
	}
}

type entry struct {
	system System
	labels []string
	before []string
	after  []string
	conds  []Condition
}

func (e *entry) hasLabel(l string) bool {
	for _, own := range e.labels {
		if own == l {
			return true
		}
	}
	return false
}

// Scheduler runs systems through the fixed phase pipeline.
type Scheduler struct {
	startup []System
	phases  [phaseCount][]*entry
	sorted  [phaseCount][]*entry
	dirty   bool
	started bool
	chains  int
}

func NewScheduler() *Scheduler {
	return &Scheduler{dirty: true}
}

// AddStartup registers a system that runs once before the first frame.
func (s *Scheduler) AddStartup(system System) {
	if system == nil {
		return
	}
	s.startup = append(s.startup, system)
}

// Add registers a system in phase.
func (s *Scheduler) Add(phase Phase, system System, opts ...Option) {
	if system == nil || phase < 0 || phase >= phaseCount {
		return
	}
	e := &entry{system: system}
	for _, opt := range opts {
		opt(e)
	}
	s.phases[phase] = append(s.phases[phase], e)
	s.dirty = true
}

// Chain registers systems in phase so that each runs strictly after the
// previous one. opts apply to every system of the chain.
func (s *Scheduler) Chain(phase Phase, systems []System, opts ...Option) {
	s.chains++
	prev := ""
	for i, system := range systems {
		label := fmt.Sprintf("chain#%d.%d", s.chains, i)
		all := append([]Option{Label(label)}, opts...)
		if prev != "" {
			all = append(all, After(prev))
		}
		s.Add(phase, system, all...)
		prev = label
	}
}

// Build validates ordering constraints and fixes the execution order. A
// cycle or a reference to an unknown label is a configuration error.
func (s *Scheduler) Build() error {
	for p := PhaseFirst; p < phaseCount; p++ {
		order, err := sortPhase(s.phases[p])
		if err != nil {
			return fmt.Errorf("ecs: phase %s: %w", p, err)
		}
		s.sorted[p] = order
	}
	s.dirty = false
	return nil
}

func sortPhase(entries []*entry) ([]*entry, error) {
	n := len(entries)
	edges := make([][]int, n)
	indeg := make([]int, n)
	addEdge := func(from, to int) {
		edges[from] = append(edges[from], to)
		indeg[to]++
	}

	for i, e := range entries {
		for _, l := range e.after {
			found := false
			for j, other := range entries {
				if j != i && other.hasLabel(l) {
					addEdge(j, i)
					found = true
				}
			}
			if !found {
				return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, l)
			}
		}
		for _, l := range e.before {
			found := false
			for j, other := range entries {
				if j != i && other.hasLabel(l) {
					addEdge(i, j)
					found = true
				}
			}
			if !found {
				return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, l)
			}
		}
	}

	// Kahn's algorithm, always picking the earliest registered ready system
	// so unconstrained systems keep registration order.
	ready := make([]int, 0, n)
	for i := range entries {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}
	out := make([]*entry, 0, n)
	for len(ready) > 0 {
		sort.Ints(ready)
		next := ready[0]
		ready = ready[1:]
		out = append(out, entries[next])
		for _, to := range edges[next] {
			indeg[to]--
			if indeg[to] == 0 {
				ready = append(ready, to)
			}
		}
	}
	if len(out) != n {
		var stuck []string
		for i, e := range entries {
			if indeg[i] > 0 {
				stuck = append(stuck, fmt.Sprintf("%T%v", e.system, e.labels))
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrScheduleCycle, strings.Join(stuck, ", "))
	}
	return out, nil
}

// Run executes one frame: startup systems on the first call, then every
// phase in order. Deferred commands are applied after each phase and late
// commands after the last one.
func (s *Scheduler) Run(w *World) error {
	if w == nil {
		return nil
	}
	if s.dirty {
		if err := s.Build(); err != nil {
			return err
		}
	}
	if !s.started {
		s.started = true
		for _, system := range s.startup {
			w.AdvanceTick()
			system.Update(w)
		}
		w.AdvanceTick()
		w.commands.Apply()
	}

	for p := PhaseFirst; p < phaseCount; p++ {
		s.runPhase(w, p)
	}
	w.AdvanceTick()
	w.commands.Late().Apply()
	w.events.flush()
	return nil
}

// RunPhase executes a single phase and applies its commands.
func (s *Scheduler) RunPhase(w *World, p Phase) error {
	if s.dirty {
		if err := s.Build(); err != nil {
			return err
		}
	}
	s.runPhase(w, p)
	return nil
}

func (s *Scheduler) runPhase(w *World, p Phase) {
	for _, e := range s.sorted[p] {
		if !e.allowed(w) {
			continue
		}
		w.AdvanceTick()
		e.system.Update(w)
	}
	w.AdvanceTick()
	w.commands.Apply()
}

func (e *entry) allowed(w *World) bool {
	for _, c := range e.conds {
		if !c(w) {
			return false
		}
	}
	return true
}
