package state

import (
	"reflect"
	"testing"

	"github.com/milk9111/jamstarter/ecs"
)

type menu int

const (
	menuMain menu = iota + 1
	menuPause
	menuSettings
)

func enter(s menu, depth int) Transition[menu] {
	return Transition[menu]{Change: Enter, State: s, Depth: depth}
}

func exit(s menu, depth int) Transition[menu] {
	return Transition[menu]{Change: Exit, State: s, Depth: depth}
}

func TestStackResolve(t *testing.T) {
	tests := []struct {
		name  string
		start []menu
		ops   func(s *Stack[menu])
		want  []Transition[menu]
		stack []menu
	}{
		{
			name:  "empty_queue",
			start: []menu{menuMain},
			ops:   func(*Stack[menu]) {},
			want:  nil,
			stack: []menu{menuMain},
		},
		{
			name:  "pop_on_empty",
			ops:   func(s *Stack[menu]) { s.Pop() },
			want:  nil,
			stack: nil,
		},
		{
			name:  "push_onto_empty",
			ops:   func(s *Stack[menu]) { s.Push(menuMain) },
			want:  []Transition[menu]{enter(menuMain, 0)},
			stack: []menu{menuMain},
		},
		{
			name:  "push_same_top_is_noop",
			start: []menu{menuMain},
			ops:   func(s *Stack[menu]) { s.Push(menuMain) },
			want:  nil,
			stack: []menu{menuMain},
		},
		{
			name:  "replace_fires_exit_and_enter",
			start: []menu{menuPause, menuSettings},
			ops:   func(s *Stack[menu]) { s.Replace(menuMain) },
			want:  []Transition[menu]{exit(menuSettings, 1), enter(menuMain, 1)},
			stack: []menu{menuPause, menuMain},
		},
		{
			name:  "replace_with_same_state_refires",
			start: []menu{menuMain},
			ops:   func(s *Stack[menu]) { s.Replace(menuMain) },
			want:  []Transition[menu]{exit(menuMain, 0), enter(menuMain, 0)},
			stack: []menu{menuMain},
		},
		{
			name:  "clear_exits_innermost_first",
			start: []menu{menuMain, menuPause, menuSettings},
			ops:   func(s *Stack[menu]) { s.Clear() },
			want:  []Transition[menu]{exit(menuSettings, 2), exit(menuPause, 1), exit(menuMain, 0)},
			stack: []menu{},
		},
		{
			name:  "push_then_pop_same_tick_is_silent",
			start: []menu{menuMain},
			ops: func(s *Stack[menu]) {
				s.Push(menuSettings)
				s.Pop()
			},
			want:  nil,
			stack: []menu{menuMain},
		},
		{
			name: "ops_apply_in_submission_order",
			ops: func(s *Stack[menu]) {
				s.Push(menuMain)
				s.Push(menuPause)
				s.Push(menuSettings)
				s.Pop()
			},
			want:  []Transition[menu]{enter(menuMain, 0), enter(menuPause, 1)},
			stack: []menu{menuMain, menuPause},
		},
		{
			name:  "set_replaces_whole_stack",
			start: []menu{menuPause, menuSettings},
			ops:   func(s *Stack[menu]) { s.Set(menuMain) },
			want:  []Transition[menu]{exit(menuSettings, 1), exit(menuPause, 0), enter(menuMain, 0)},
			stack: []menu{menuMain},
		},
		{
			name:  "toggle_twice_same_tick_cancels",
			start: []menu{menuMain},
			ops: func(s *Stack[menu]) {
				s.Toggle(menuPause)
				s.Toggle(menuPause)
			},
			want:  nil,
			stack: []menu{menuMain},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStack[menu]("menu")
			for _, m := range tc.start {
				s.Push(m)
			}
			s.Resolve()

			tc.ops(s)
			got := s.Resolve()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("transitions = %v, want %v", got, tc.want)
			}
			if len(s.Active()) != len(tc.stack) || (len(tc.stack) > 0 && !reflect.DeepEqual(s.Active(), tc.stack)) {
				t.Fatalf("stack = %v, want %v", s.Active(), tc.stack)
			}
		})
	}
}

func TestStackResolveEmptyQueueIsIdempotent(t *testing.T) {
	s := NewStack[menu]("menu")
	s.Push(menuMain)
	s.Resolve()

	for i := 0; i < 2; i++ {
		if got := s.Resolve(); len(got) != 0 {
			t.Fatalf("resolve #%d: expected no transitions, got %v", i, got)
		}
	}
}

func TestStackPushPopRoundTrip(t *testing.T) {
	s := NewStack[menu]("menu")

	s.Push(menuMain)
	if got := s.Resolve(); !reflect.DeepEqual(got, []Transition[menu]{enter(menuMain, 0)}) {
		t.Fatalf("push A: got %v", got)
	}

	s.Push(menuPause)
	if got := s.Resolve(); !reflect.DeepEqual(got, []Transition[menu]{enter(menuPause, 1)}) {
		t.Fatalf("push B: got %v", got)
	}
	if !reflect.DeepEqual(s.Active(), []menu{menuMain, menuPause}) {
		t.Fatalf("stack after push B = %v", s.Active())
	}

	s.Pop()
	if got := s.Resolve(); !reflect.DeepEqual(got, []Transition[menu]{exit(menuPause, 1)}) {
		t.Fatalf("pop: got %v", got)
	}
	if !reflect.DeepEqual(s.Active(), []menu{menuMain}) {
		t.Fatalf("stack after pop = %v", s.Active())
	}
}

func TestStackToggleSymmetry(t *testing.T) {
	s := NewStack[menu]("menu")

	s.Toggle(menuPause)
	s.Resolve()
	if !reflect.DeepEqual(s.Active(), []menu{menuPause}) {
		t.Fatalf("after first toggle: %v", s.Active())
	}

	s.Toggle(menuPause)
	s.Resolve()
	if !s.Empty() {
		t.Fatalf("after second toggle: %v", s.Active())
	}
}

func TestStackApplyRunsHooks(t *testing.T) {
	w := ecs.NewWorld()
	s := NewStack[menu]("menu")

	var log []string
	s.OnEnter(menuMain, func(*ecs.World) { log = append(log, "enter main") })
	s.OnExit(menuMain, func(*ecs.World) { log = append(log, "exit main") })
	s.OnEnter(menuPause, func(*ecs.World) { log = append(log, "enter pause") })
	s.OnExit(menuPause, func(*ecs.World) { log = append(log, "exit pause") })

	changes := 0
	s.OnChange(func(_ *ecs.World, top menu, ok bool) {
		changes++
		log = append(log, "change")
	})

	s.Push(menuMain)
	s.Push(menuPause)
	s.Apply(w)

	s.Clear()
	s.Apply(w)

	// no pending requests: nothing fires
	s.Apply(w)

	want := []string{"enter main", "enter pause", "change", "exit pause", "exit main", "change"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("hook order = %v, want %v", log, want)
	}
	if changes != 2 {
		t.Fatalf("expected 2 change notifications, got %d", changes)
	}
	if n := len(w.Events().Peek(EventTransition)); n != 4 {
		t.Fatalf("expected 4 transition events, got %d", n)
	}
}

func TestConditions(t *testing.T) {
	s := NewStack[menu]("menu")
	in := In(s, menuPause)
	within := Within(s, menuMain)
	idle := Idle(s)

	if in(nil) || within(nil) || !idle(nil) {
		t.Fatalf("conditions on empty stack wrong")
	}

	s.Push(menuMain)
	s.Push(menuPause)
	s.Resolve()
	if !in(nil) || !within(nil) || idle(nil) {
		t.Fatalf("conditions on [main pause] wrong")
	}
}
