package system

import (
	"log"

	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/state"
)

// TransitionLogSystem logs every state transition of the frame. Register it
// after the state flush when running with -debug.
type TransitionLogSystem struct{}

func NewTransitionLogSystem() *TransitionLogSystem {
	return &TransitionLogSystem{}
}

func (s *TransitionLogSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Peek(state.EventTransition) {
		t, ok := evt.Data.(state.Event)
		if !ok {
			continue
		}
		log.Printf("StateLog: %s %s %v depth=%d", t.Layer, t.Change, t.State, t.Depth)
	}
}
