package state

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/jamstarter/ecs"
)

var (
	ErrNestCycle     = errors.New("state: nesting cycle")
	ErrAlreadyNested = errors.New("state: layer already has a parent")
	ErrSelfNested    = errors.New("state: layer nested in itself")
)

// EventTransition is the ecs event type pushed for every dispatched edge.
const EventTransition = "state.transition"

// Event is the payload of EventTransition.
type Event struct {
	Layer  string
	Change Change
	State  any
	Depth  int
}

// Layer is a stack resolved by Layers. *Stack[S] implements it for any S.
type Layer interface {
	Name() string
	Pending() bool
	Empty() bool

	resolveLayer() bool
	restart()
	dispatch(w *ecs.World, c Change)
	notify(w *ecs.World)
}

func (s *Stack[S]) resolveLayer() bool { return len(s.Resolve()) > 0 }

// restart replaces queued requests with a single clear.
func (s *Stack[S]) restart() {
	var zero S
	s.pending = append(s.pending[:0], op[S]{kind: opClear, state: zero})
}

// Cascade picks when a parent's transition clears a nested layer.
type Cascade int

const (
	// ClearOnChange clears the child whenever the parent's stack changes.
	ClearOnChange Cascade = iota
	// ClearOnEmpty clears the child when the parent's stack becomes empty.
	ClearOnEmpty
)

type node struct {
	layer   Layer
	parent  *node
	cascade Cascade
	changed bool
}

// Layers resolves several stacks as one nested hierarchy, e.g. Screen >
// Menu > Pause. Each flush resolves parents before children; a parent's
// change can clear its children before their own requests apply. Exit hooks
// then run innermost layer first and enter hooks outermost layer first.
type Layers struct {
	nodes     []*node
	byLayer   map[Layer]*node
	maxPasses int
}

// DefaultMaxPasses bounds how many times a single flush re-resolves when
// hooks keep queueing new requests.
const DefaultMaxPasses = 8

func NewLayers() *Layers {
	return &Layers{byLayer: make(map[Layer]*node), maxPasses: DefaultMaxPasses}
}

// SetMaxPasses overrides DefaultMaxPasses.
func (l *Layers) SetMaxPasses(n int) {
	if n > 0 {
		l.maxPasses = n
	}
}

// Add registers a root layer. Adding a known layer is a no-op.
func (l *Layers) Add(layer Layer) {
	l.nodeFor(layer)
}

func (l *Layers) nodeFor(layer Layer) *node {
	if n, ok := l.byLayer[layer]; ok {
		return n
	}
	n := &node{layer: layer}
	l.byLayer[layer] = n
	l.nodes = append(l.nodes, n)
	return n
}

// Nest declares child as nested inside parent. It fails if child already
// has a parent or if the nesting would form a cycle; both are startup
// configuration errors.
func (l *Layers) Nest(parent, child Layer, c Cascade) error {
	if parent == child {
		return fmt.Errorf("%w: %s", ErrSelfNested, child.Name())
	}
	p := l.nodeFor(parent)
	ch := l.nodeFor(child)
	if ch.parent != nil {
		return fmt.Errorf("%w: %s is nested in %s", ErrAlreadyNested, child.Name(), ch.parent.layer.Name())
	}
	for anc := p; anc != nil; anc = anc.parent {
		if anc == ch {
			return fmt.Errorf("%w: %s > %s", ErrNestCycle, parent.Name(), child.Name())
		}
	}
	ch.parent = p
	ch.cascade = c
	l.sort()
	return nil
}

// sort orders nodes so every parent precedes its children, keeping
// registration order otherwise.
func (l *Layers) sort() {
	depth := func(n *node) int {
		d := 0
		for p := n.parent; p != nil; p = p.parent {
			d++
		}
		return d
	}
	out := make([]*node, 0, len(l.nodes))
	placed := make(map[*node]bool, len(l.nodes))
	for d := 0; len(out) < len(l.nodes); d++ {
		for _, n := range l.nodes {
			if !placed[n] && depth(n) == d {
				out = append(out, n)
				placed[n] = true
			}
		}
	}
	l.nodes = out
}

// stale reports whether the parent's state invalidates n's stack and its
// queued requests. Requests queued before the parent changed are dropped
// with it.
func (n *node) stale() bool {
	p := n.parent
	if p == nil || (n.layer.Empty() && !n.layer.Pending()) {
		return false
	}
	switch n.cascade {
	case ClearOnChange:
		return p.changed
	case ClearOnEmpty:
		return p.layer.Empty()
	}
	return false
}

func (l *Layers) pending() bool {
	for _, n := range l.nodes {
		if n.layer.Pending() {
			return true
		}
	}
	return false
}

// Flush resolves all layers until no requests remain or the pass budget is
// spent. It reports the number of passes that produced work.
func (l *Layers) Flush(w *ecs.World) int {
	passes := 0
	for l.pending() {
		if passes == l.maxPasses {
			log.Printf("Layers: flush stopped after %d passes; remaining requests resolve next frame", passes)
			break
		}
		passes++
		l.pass(w)
	}
	return passes
}

func (l *Layers) pass(w *ecs.World) {
	for _, n := range l.nodes {
		if n.stale() {
			n.layer.restart()
		}
		n.changed = n.layer.resolveLayer()
	}

	for i := len(l.nodes) - 1; i >= 0; i-- {
		if l.nodes[i].changed {
			l.nodes[i].layer.dispatch(w, Exit)
		}
	}
	for _, n := range l.nodes {
		if n.changed {
			n.layer.dispatch(w, Enter)
		}
	}
	for _, n := range l.nodes {
		if n.changed {
			n.layer.notify(w)
			n.changed = false
		}
	}
}

// Update runs Flush; schedule it in ecs.PhaseStateTransition.
func (l *Layers) Update(w *ecs.World) {
	l.Flush(w)
}
