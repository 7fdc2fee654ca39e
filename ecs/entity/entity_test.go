package entity

import (
	"testing"

	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/milk9111/jamstarter/ecs/system"
)

func newWorld() *ecs.World {
	w := ecs.NewWorld()
	system.InstallAnimation(w, ecs.NewScheduler())
	return w
}

func TestFadeOverlayBringsBackups(t *testing.T) {
	w := newWorld()
	called := false
	e, err := NewFadeOutOverlay(w, nil, 0.5, func() { called = true })
	if err != nil {
		t.Fatal(err)
	}

	for name, has := range map[string]bool{
		"tint backup":      ecs.Has(w, e, component.TintBackupComponent),
		"global transform": ecs.Has(w, e, component.GlobalTransformComponent),
		"screen space":     ecs.Has(w, e, component.ScreenSpaceComponent),
		"overlay tag":      ecs.Has(w, e, component.OverlayTagComponent),
	} {
		if !has {
			t.Fatalf("overlay missing %s", name)
		}
	}
	f, _ := ecs.Get(w, e, component.FadeOutComponent)
	if f.Remaining != 0.5 || f.Then == nil {
		t.Fatalf("unexpected fade %+v", f)
	}
	f.Then()
	if !called {
		t.Fatalf("callback not stored")
	}
}

func TestPrefabEntities(t *testing.T) {
	w := newWorld()

	tests := []struct {
		name  string
		spawn func() (ecs.Entity, error)
		check func(t *testing.T, e ecs.Entity)
	}{
		{
			name:  "player",
			spawn: func() (ecs.Entity, error) { return NewPlayer(w, nil) },
			check: func(t *testing.T, e ecs.Entity) {
				if !ecs.Has(w, e, component.PhysicsBodyComponent) || !ecs.Has(w, e, component.TransformBackupComponent) {
					t.Fatalf("player needs a body and a transform backup for facing")
				}
				p, _ := ecs.Get(w, e, component.PlayerComponent)
				if p.MoveSpeed <= 0 {
					t.Fatalf("player speed not loaded")
				}
			},
		},
		{
			name:  "crate",
			spawn: func() (ecs.Entity, error) { return NewCrate(w, nil, 40, 50) },
			check: func(t *testing.T, e ecs.Entity) {
				tr, _ := ecs.Get(w, e, component.TransformComponent)
				if tr.X != 40 || tr.Y != 50 {
					t.Fatalf("crate position %+v", tr)
				}
			},
		},
		{
			name:  "logo",
			spawn: func() (ecs.Entity, error) { return NewLogo(w, nil) },
			check: func(t *testing.T, e ecs.Entity) {
				if !ecs.Has(w, e, component.BobComponent) || !ecs.Has(w, e, component.SlideComponent) {
					t.Fatalf("logo animations missing")
				}
				s, _ := ecs.Get(w, e, component.SpriteComponent)
				if s.OriginX != s.Width/2 {
					t.Fatalf("logo should be centered: %+v", s)
				}
			},
		},
		{
			name: "box",
			spawn: func() (ecs.Entity, error) {
				return NewBox(w, nil, Box{Width: 100, Height: 10, Static: true, TopLeft: true})
			},
			check: func(t *testing.T, e ecs.Entity) {
				body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
				if !body.Static {
					t.Fatalf("static box without static body")
				}
				s, _ := ecs.Get(w, e, component.SpriteComponent)
				if s.OriginX != 0 {
					t.Fatalf("top-left box has origin %v", s.OriginX)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := tc.spawn()
			if err != nil {
				t.Fatal(err)
			}
			tc.check(t, e)
		})
	}
}
