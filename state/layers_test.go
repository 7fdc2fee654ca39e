package state

import (
	"errors"
	"reflect"
	"testing"

	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
)

type screen int

const (
	screenTitle screen = iota + 1
	screenGameplay
)

type pause int

const paused pause = 1

type fixture struct {
	w      *ecs.World
	layers *Layers
	screen *Stack[screen]
	menu   *Stack[menu]
	pause  *Stack[pause]
	log    []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		w:      ecs.NewWorld(),
		layers: NewLayers(),
		screen: NewStack[screen]("screen"),
		menu:   NewStack[menu]("menu"),
		pause:  NewStack[pause]("pause"),
	}
	if err := f.layers.Nest(f.screen, f.menu, ClearOnChange); err != nil {
		t.Fatal(err)
	}
	if err := f.layers.Nest(f.menu, f.pause, ClearOnEmpty); err != nil {
		t.Fatal(err)
	}

	record := func(s string) Hook { return func(*ecs.World) { f.log = append(f.log, s) } }
	f.screen.OnEnter(screenTitle, record("enter title"))
	f.screen.OnExit(screenTitle, record("exit title"))
	f.screen.OnEnter(screenGameplay, record("enter gameplay"))
	f.screen.OnExit(screenGameplay, record("exit gameplay"))
	f.menu.OnEnter(menuMain, record("enter main"))
	f.menu.OnExit(menuMain, record("exit main"))
	f.menu.OnEnter(menuPause, record("enter pause menu"))
	f.menu.OnExit(menuPause, record("exit pause menu"))
	f.menu.OnEnter(menuSettings, record("enter settings"))
	f.menu.OnExit(menuSettings, record("exit settings"))
	f.pause.OnEnter(paused, record("enter paused"))
	f.pause.OnExit(paused, record("exit paused"))
	return f
}

func (f *fixture) flush() []string {
	f.log = nil
	f.layers.Flush(f.w)
	return f.log
}

func TestLayersCascadeOrder(t *testing.T) {
	f := newFixture(t)

	f.screen.Set(screenGameplay)
	f.flush()

	f.pause.Push(paused)
	f.menu.Push(menuPause)
	got := f.flush()
	want := []string{"enter pause menu", "enter paused"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("pause: got %v, want %v", got, want)
	}

	f.menu.Push(menuSettings)
	got = f.flush()
	if !reflect.DeepEqual(got, []string{"enter settings"}) {
		t.Fatalf("settings over pause: got %v", got)
	}
	if !f.pause.Contains(paused) {
		t.Fatalf("pause must survive a menu push")
	}

	// Leaving the screen must tear down everything nested inside it before
	// the new screen's enter hook runs.
	f.screen.Set(screenTitle)
	got = f.flush()
	want = []string{"exit paused", "exit settings", "exit pause menu", "exit gameplay", "enter title"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("screen change: got %v, want %v", got, want)
	}
	if !f.menu.Empty() || !f.pause.Empty() {
		t.Fatalf("nested layers not cleared: menu=%v pause=%v", f.menu.Active(), f.pause.Active())
	}
}

func TestLayersEmptyMenuUnpauses(t *testing.T) {
	f := newFixture(t)
	f.screen.Set(screenGameplay)
	f.flush()
	f.pause.Push(paused)
	f.menu.Push(menuPause)
	f.flush()

	f.menu.Pop()
	got := f.flush()
	want := []string{"exit paused", "exit pause menu"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLayersDropStaleRequests(t *testing.T) {
	tests := []struct {
		name  string
		queue func(f *fixture)
		want  []string
	}{
		{
			name: "screen_change",
			queue: func(f *fixture) {
				f.menu.Push(menuPause)
				f.pause.Push(paused)
				f.screen.Set(screenTitle)
			},
			want: []string{"exit gameplay", "enter title"},
		},
		{
			name:  "pause_without_menu",
			queue: func(f *fixture) { f.pause.Push(paused) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.screen.Set(screenGameplay)
			f.flush()

			tc.queue(f)
			if got := f.flush(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if !f.menu.Empty() || !f.pause.Empty() {
				t.Fatalf("stale requests applied: menu=%v pause=%v", f.menu.Active(), f.pause.Active())
			}
			if f.menu.Pending() || f.pause.Pending() {
				t.Fatalf("stale requests left queued")
			}
		})
	}
}

func TestLayersHookRequestsResolveSameFlush(t *testing.T) {
	f := newFixture(t)
	f.screen.OnEnter(screenTitle, func(*ecs.World) { f.menu.Push(menuMain) })

	f.screen.Set(screenTitle)
	got := f.flush()
	want := []string{"enter title", "enter main"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLayersPassBudget(t *testing.T) {
	f := newFixture(t)
	f.layers.SetMaxPasses(3)
	// a hook that always requeues itself never settles
	f.menu.OnEnter(menuSettings, func(*ecs.World) { f.menu.Replace(menuSettings) })

	f.menu.Push(menuSettings)
	if n := f.layers.Flush(f.w); n != 3 {
		t.Fatalf("expected flush to stop after 3 passes, got %d", n)
	}
	if !f.menu.Pending() {
		t.Fatalf("remaining request should carry over to the next flush")
	}
}

func TestLayersNestValidation(t *testing.T) {
	a := NewStack[int]("a")
	b := NewStack[int]("b")
	c := NewStack[int]("c")

	tests := []struct {
		name string
		run  func(l *Layers) error
		want error
	}{
		{
			name: "self",
			run:  func(l *Layers) error { return l.Nest(a, a, ClearOnChange) },
			want: ErrSelfNested,
		},
		{
			name: "two_parents",
			run: func(l *Layers) error {
				if err := l.Nest(a, c, ClearOnChange); err != nil {
					return err
				}
				return l.Nest(b, c, ClearOnChange)
			},
			want: ErrAlreadyNested,
		},
		{
			name: "cycle",
			run: func(l *Layers) error {
				if err := l.Nest(a, b, ClearOnChange); err != nil {
					return err
				}
				if err := l.Nest(b, c, ClearOnChange); err != nil {
					return err
				}
				return l.Nest(c, a, ClearOnChange)
			},
			want: ErrNestCycle,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run(NewLayers())
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDespawnScoped(t *testing.T) {
	w := ecs.NewWorld()
	scope := component.NewComponent[Scoped[screen]]()
	s := NewStack[screen]("screen")
	s.DespawnScoped(scope)

	var spawned ecs.Entity
	s.OnEnter(screenTitle, func(w *ecs.World) {
		spawned = w.CreateEntity()
		_ = ecs.Add(w, spawned, scope, Scoped[screen]{State: screenTitle})
	})

	s.Set(screenTitle)
	s.Apply(w)
	first := spawned

	keep := w.CreateEntity()
	_ = ecs.Add(w, keep, scope, Scoped[screen]{State: screenGameplay})

	// re-entering the same state despawns the old entity only
	s.Replace(screenTitle)
	s.Apply(w)
	w.Commands().Apply()

	if w.IsAlive(first) {
		t.Fatalf("entity scoped to the exited state should be despawned")
	}
	if !w.IsAlive(spawned) || spawned == first {
		t.Fatalf("entity spawned by the new enter should survive")
	}
	if !w.IsAlive(keep) {
		t.Fatalf("entity scoped to another state should survive")
	}
}
