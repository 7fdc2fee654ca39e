// Package state implements stacked game states (screens, menus, pause) with
// deferred push/pop requests resolved once per flush into ordered exit and
// enter transitions.
package state

import (
	"fmt"

	"github.com/milk9111/jamstarter/ecs"
)

// Change tells whether a transition leaves or enters a state.
type Change int

const (
	Exit Change = iota
	Enter
)

func (c Change) String() string {
	if c == Enter {
		return "enter"
	}
	return "exit"
}

// Transition is one edge of a resolution. Depth is the stack index of the
// state, 0 being the outermost.
type Transition[S comparable] struct {
	Change Change
	State  S
	Depth  int
}

func (t Transition[S]) String() string {
	return fmt.Sprintf("%s %v", t.Change, t.State)
}

// Hook runs when a state is entered or exited.
type Hook func(w *ecs.World)

type opKind int

const (
	opPush opKind = iota
	opPop
	opReplace
	opToggle
	opClear
	opSet
)

type op[S comparable] struct {
	kind  opKind
	state S
}

// Stack holds the nested active states of one state type, innermost last.
// Requests are queued and only take effect when the stack is resolved.
type Stack[S comparable] struct {
	name    string
	stack   []S
	pending []op[S]

	enter    map[S][]Hook
	exit     map[S][]Hook
	onChange []func(w *ecs.World, top S, ok bool)
	onEdge   []func(w *ecs.World, t Transition[S])

	// edges of the most recent resolution, consumed by dispatch.
	edges []Transition[S]
}

// NewStack creates an empty stack. name is used in logs and events.
func NewStack[S comparable](name string) *Stack[S] {
	return &Stack[S]{
		name:  name,
		enter: make(map[S][]Hook),
		exit:  make(map[S][]Hook),
	}
}

func (s *Stack[S]) Name() string { return s.name }

// Push requests s to be entered on top of the stack. Pushing the state that
// is already on top is a no-op.
func (s *Stack[S]) Push(v S) { s.queue(opPush, v) }

// Pop requests the top state to be exited. Popping an empty stack is a no-op.
func (s *Stack[S]) Pop() {
	var zero S
	s.queue(opPop, zero)
}

// Replace requests the top state to be swapped for v. The old top always
// exits and v always enters, even when they are equal.
func (s *Stack[S]) Replace(v S) { s.queue(opReplace, v) }

// Toggle pops v when it is on top at resolution time, otherwise pushes it.
func (s *Stack[S]) Toggle(v S) { s.queue(opToggle, v) }

// Clear requests every state to be exited, innermost first.
func (s *Stack[S]) Clear() {
	var zero S
	s.queue(opClear, zero)
}

// Set requests the whole stack to become exactly [v].
func (s *Stack[S]) Set(v S) { s.queue(opSet, v) }

func (s *Stack[S]) queue(kind opKind, v S) {
	s.pending = append(s.pending, op[S]{kind: kind, state: v})
}

// Pending reports whether requests are waiting for resolution.
func (s *Stack[S]) Pending() bool { return len(s.pending) > 0 }

// Top returns the innermost active state.
func (s *Stack[S]) Top() (S, bool) {
	if len(s.stack) == 0 {
		var zero S
		return zero, false
	}
	return s.stack[len(s.stack)-1], true
}

// Is reports whether v is the innermost active state.
func (s *Stack[S]) Is(v S) bool {
	top, ok := s.Top()
	return ok && top == v
}

// Contains reports whether v is active at any depth.
func (s *Stack[S]) Contains(v S) bool {
	for _, active := range s.stack {
		if active == v {
			return true
		}
	}
	return false
}

func (s *Stack[S]) Len() int { return len(s.stack) }

func (s *Stack[S]) Empty() bool { return len(s.stack) == 0 }

// Active returns a copy of the active states, outermost first.
func (s *Stack[S]) Active() []S {
	return append([]S(nil), s.stack...)
}

// OnEnter registers a hook run when v becomes active.
func (s *Stack[S]) OnEnter(v S, h Hook) {
	if h != nil {
		s.enter[v] = append(s.enter[v], h)
	}
}

// OnExit registers a hook run when v stops being active.
func (s *Stack[S]) OnExit(v S, h Hook) {
	if h != nil {
		s.exit[v] = append(s.exit[v], h)
	}
}

// OnChange registers fn to run once after every resolution that produced
// transitions, with the resulting top state.
func (s *Stack[S]) OnChange(fn func(w *ecs.World, top S, ok bool)) {
	if fn != nil {
		s.onChange = append(s.onChange, fn)
	}
}

// OnTransition registers fn to observe every edge, before per-state hooks.
func (s *Stack[S]) OnTransition(fn func(w *ecs.World, t Transition[S])) {
	if fn != nil {
		s.onEdge = append(s.onEdge, fn)
	}
}

// Resolve applies the queued requests in submission order and returns the
// resulting transitions: exits innermost first, then enters outermost
// first. An empty queue yields nil.
func (s *Stack[S]) Resolve() []Transition[S] {
	if len(s.pending) == 0 {
		s.edges = nil
		return nil
	}

	old := s.stack
	work := append([]S(nil), old...)
	// floor is the lowest depth that was popped at some point; entries at or
	// above it are re-entered even if the same value ends up there again.
	floor := len(work)
	pop := func() {
		if len(work) == 0 {
			return
		}
		work = work[:len(work)-1]
		if len(work) < floor {
			floor = len(work)
		}
	}
	push := func(v S) {
		if n := len(work); n > 0 && work[n-1] == v {
			return
		}
		work = append(work, v)
	}

	for _, o := range s.pending {
		switch o.kind {
		case opPush:
			push(o.state)
		case opPop:
			pop()
		case opReplace:
			pop()
			work = append(work, o.state)
		case opToggle:
			if n := len(work); n > 0 && work[n-1] == o.state {
				pop()
			} else {
				push(o.state)
			}
		case opClear:
			work = work[:0]
			floor = 0
		case opSet:
			work = append(work[:0], o.state)
			floor = 0
		}
	}
	s.pending = nil

	keep := 0
	for keep < len(old) && keep < len(work) && old[keep] == work[keep] {
		keep++
	}
	if floor < keep {
		keep = floor
	}

	var edges []Transition[S]
	for i := len(old) - 1; i >= keep; i-- {
		edges = append(edges, Transition[S]{Change: Exit, State: old[i], Depth: i})
	}
	for i := keep; i < len(work); i++ {
		edges = append(edges, Transition[S]{Change: Enter, State: work[i], Depth: i})
	}

	s.stack = work
	s.edges = edges
	return edges
}

// Apply resolves the stack and runs hooks for the resulting transitions.
func (s *Stack[S]) Apply(w *ecs.World) []Transition[S] {
	edges := s.Resolve()
	if len(edges) == 0 {
		return nil
	}
	s.dispatch(w, Exit)
	s.dispatch(w, Enter)
	s.notify(w)
	return edges
}

func (s *Stack[S]) dispatch(w *ecs.World, c Change) {
	for _, t := range s.edges {
		if t.Change != c {
			continue
		}
		for _, fn := range s.onEdge {
			fn(w, t)
		}
		w.Events().Push(ecs.Event{Type: EventTransition, Data: Event{
			Layer:  s.name,
			Change: t.Change,
			State:  t.State,
			Depth:  t.Depth,
		}})
		hooks := s.enter
		if c == Exit {
			hooks = s.exit
		}
		for _, h := range hooks[t.State] {
			h(w)
		}
	}
}

func (s *Stack[S]) notify(w *ecs.World) {
	if len(s.edges) == 0 {
		return
	}
	s.edges = nil
	top, ok := s.Top()
	for _, fn := range s.onChange {
		fn(w, top, ok)
	}
}

// Update lets a lone stack be scheduled as a system.
func (s *Stack[S]) Update(w *ecs.World) {
	s.Apply(w)
}
