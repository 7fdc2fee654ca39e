package system

import (
	"math"
	"testing"

	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/tanema/gween/ease"
)

type pipeline struct {
	w     *ecs.World
	s     *ecs.Scheduler
	clock *ecs.Time
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	p := &pipeline{w: ecs.NewWorld(), s: ecs.NewScheduler(), clock: ecs.NewTime()}
	ecs.InsertResource(p.w, p.clock)
	InstallAnimation(p.w, p.s)
	return p
}

func (p *pipeline) step(t *testing.T, dt float64) {
	t.Helper()
	p.clock.Advance(dt)
	if err := p.s.Run(p.w); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func (p *pipeline) transform(t *testing.T, e ecs.Entity) component.Transform {
	t.Helper()
	tr, ok := ecs.Get(p.w, e, component.TransformComponent)
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return *tr
}

func TestBackupRoundTrip(t *testing.T) {
	p := newPipeline(t)
	e := p.w.CreateEntity()
	v0 := component.Transform{X: 3, Y: -4, ScaleX: 2, ScaleY: 1, Rotation: 0.25}
	_ = ecs.Add(p.w, e, component.TransformComponent, v0)
	_ = ecs.Add(p.w, e, component.TransformBackupComponent, component.Backup[component.Transform]{})

	for frame := 1; frame <= 3; frame++ {
		p.step(t, 1.0/60)
		if got := p.transform(t, e); got != v0 {
			t.Fatalf("frame %d: got %+v, want %+v", frame, got, v0)
		}
	}
}

func TestAdditiveBlendDoesNotAccumulate(t *testing.T) {
	p := newPipeline(t)
	second := component.NewComponent[component.Offset]()
	p.s.Add(ecs.PhaseBlend, NewBlendSystem(component.TransformComponent, second, ApplyOffset), ecs.After(LabelBlend))

	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TransformComponent, component.NewTransform(10, 0))
	_ = ecs.Add(p.w, e, component.OffsetComponent, component.Offset{X: 1})
	_ = ecs.Add(p.w, e, second, component.Offset{X: 2})

	for frame := 1; frame <= 4; frame++ {
		p.step(t, 1.0/60)
		if got := p.transform(t, e).X; got != 13 {
			t.Fatalf("frame %d: blended X = %v, want 13", frame, got)
		}
		b, _ := ecs.Get(p.w, e, component.TransformBackupComponent)
		if !b.Valid || b.Saved.X != 10 {
			t.Fatalf("frame %d: saved base = %+v, want X=10", frame, b)
		}
	}
}

func TestTintOffsetMultipliesWithoutAccumulating(t *testing.T) {
	p := newPipeline(t)
	base := component.Tint{R: 1, G: 0.5, B: 1, A: 1}
	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TintComponent, base)
	_ = ecs.Add(p.w, e, component.TintOffsetComponent, component.TintOffset{Tint: component.Tint{R: 0.5, G: 0.5, B: 1, A: 0.5}})

	want := component.Tint{R: 0.5, G: 0.25, B: 1, A: 0.5}
	for frame := 1; frame <= 3; frame++ {
		p.step(t, 1.0/60)
		got, _ := ecs.Get(p.w, e, component.TintComponent)
		if *got != want {
			t.Fatalf("frame %d: tint = %+v, want %+v", frame, *got, want)
		}
		b, ok := ecs.Get(p.w, e, component.TintBackupComponent)
		if !ok || !b.Valid || b.Saved != base {
			t.Fatalf("frame %d: saved tint = %+v, want %+v", frame, b, base)
		}
	}
}

func TestOffsetScaleAndRotation(t *testing.T) {
	p := newPipeline(t)
	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TransformComponent, component.Transform{ScaleX: 2, ScaleY: 3, Rotation: 1})
	_ = ecs.Add(p.w, e, component.OffsetComponent, component.Offset{Rotation: 0.5, ScaleX: 2})

	for frame := 1; frame <= 2; frame++ {
		p.step(t, 1.0/60)
		got := p.transform(t, e)
		if got.ScaleX != 4 || got.ScaleY != 3 || got.Rotation != 1.5 {
			t.Fatalf("frame %d: got %+v", frame, got)
		}
	}
}

func TestRestoreResyncsGlobalTransform(t *testing.T) {
	p := newPipeline(t)
	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TransformComponent, component.NewTransform(0, 0))
	_ = ecs.Add(p.w, e, component.OffsetComponent, component.Offset{X: 5})

	var seen []float64
	p.s.Add(ecs.PhaseUpdate, ecs.SystemFunc(func(w *ecs.World) {
		g, _ := ecs.Get(w, e, component.GlobalTransformComponent)
		x, _ := g.Translation()
		seen = append(seen, x)
	}))

	for i := 0; i < 3; i++ {
		p.step(t, 1.0/60)
	}
	for i, x := range seen {
		if x != 0 {
			t.Fatalf("frame %d: gameplay saw blended global x=%v", i+1, x)
		}
	}
	g, _ := ecs.Get(p.w, e, component.GlobalTransformComponent)
	if x, _ := g.Translation(); x != 5 {
		t.Fatalf("final global x = %v, want 5", x)
	}
}

func TestRestoreSkipsMissingLive(t *testing.T) {
	p := newPipeline(t)
	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TransformBackupComponent, component.Backup[component.Transform]{})
	p.step(t, 1.0/60)

	ecs.Remove(p.w, e, component.TransformComponent)
	p.step(t, 1.0/60)

	if ecs.Has(p.w, e, component.TransformComponent) {
		t.Fatalf("restore must not re-create a removed live component")
	}
}

func TestFadeOutFiresOnce(t *testing.T) {
	p := newPipeline(t)

	fired := 0
	firedFrame := 0
	frame := 0
	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TintComponent, component.Tint{A: 1})
	_ = ecs.Add(p.w, e, component.FadeOutComponent, component.NewFadeOut(0.2, func() {
		fired++
		firedFrame = frame
	}))

	for frame = 1; frame <= 4; frame++ {
		p.step(t, 0.1)
		if frame == 1 {
			tint, _ := ecs.Get(p.w, e, component.TintComponent)
			if tint.A != 0.5 {
				t.Fatalf("frame 1 alpha = %v, want 0.5", tint.A)
			}
		}
	}

	if fired != 1 {
		t.Fatalf("completion fired %d times, want 1", fired)
	}
	if firedFrame != 2 && firedFrame != 3 {
		t.Fatalf("completion fired on frame %d, want 2 or 3", firedFrame)
	}
	if p.w.IsAlive(e) {
		t.Fatalf("overlay should be despawned after completing")
	}
}

func TestHeldFadeOutStaysOpaque(t *testing.T) {
	p := newPipeline(t)
	fired := 0
	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TintComponent, component.Tint{A: 1})
	f := component.NewFadeOut(0.1, func() { fired++ })
	f.Hold = true
	_ = ecs.Add(p.w, e, component.FadeOutComponent, f)

	for frame := 1; frame <= 3; frame++ {
		p.step(t, 0.1)
		if !p.w.IsAlive(e) {
			t.Fatalf("frame %d: held fade despawned", frame)
		}
		if tint, _ := ecs.Get(p.w, e, component.TintComponent); tint.A != 1 {
			t.Fatalf("frame %d: alpha = %v, want 1", frame, tint.A)
		}
	}
	if fired != 1 {
		t.Fatalf("completion fired %d times, want 1", fired)
	}
}

func TestFadeZeroDuration(t *testing.T) {
	tests := []struct {
		name string
		add  func(w *ecs.World, e ecs.Entity, fired *int)
	}{
		{
			name: "fade_out",
			add: func(w *ecs.World, e ecs.Entity, fired *int) {
				_ = ecs.Add(w, e, component.FadeOutComponent, component.NewFadeOut(0, func() { *fired++ }))
			},
		},
		{
			name: "fade_in",
			add: func(w *ecs.World, e ecs.Entity, _ *int) {
				_ = ecs.Add(w, e, component.FadeInComponent, component.NewFadeIn(0))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPipeline(t)
			fired := 0
			var alpha float32 = -1
			e := p.w.CreateEntity()
			_ = ecs.Add(p.w, e, component.TintComponent, component.Tint{A: 1})
			tc.add(p.w, e, &fired)
			p.s.Add(ecs.PhaseFinish, ecs.SystemFunc(func(w *ecs.World) {
				if tint, ok := ecs.Get(w, e, component.TintComponent); ok {
					alpha = tint.A
				}
			}))

			p.step(t, 1.0/60)
			if math.IsNaN(float64(alpha)) || alpha < 0 || alpha > 1 {
				t.Fatalf("alpha = %v", alpha)
			}
			if p.w.IsAlive(e) {
				t.Fatalf("zero-duration fade must complete on its first tick")
			}
			if tc.name == "fade_out" && fired != 1 {
				t.Fatalf("completion fired %d times, want 1", fired)
			}
		})
	}
}

func TestFadeInAlpha(t *testing.T) {
	p := newPipeline(t)
	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TintComponent, component.Tint{A: 1})
	_ = ecs.Add(p.w, e, component.FadeInComponent, component.NewFadeIn(0.2))

	p.step(t, 0.1)
	tint, _ := ecs.Get(p.w, e, component.TintComponent)
	if tint.A != 0.5 {
		t.Fatalf("alpha = %v, want 0.5", tint.A)
	}
	p.step(t, 0.1)
	if p.w.IsAlive(e) {
		t.Fatalf("fade in should despawn when done")
	}
}

func TestExternalDespawnSkipsCompletion(t *testing.T) {
	p := newPipeline(t)
	fired := 0
	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TintComponent, component.Tint{A: 1})
	_ = ecs.Add(p.w, e, component.FadeOutComponent, component.NewFadeOut(0.2, func() { fired++ }))

	p.step(t, 0.1)
	p.w.DestroyEntity(e)
	p.step(t, 0.1)
	p.step(t, 0.1)
	if fired != 0 {
		t.Fatalf("despawned fade must not complete")
	}
}

func TestFadeProgress(t *testing.T) {
	tests := []struct {
		name                string
		duration, remaining float64
		fn                  ease.TweenFunc
		want                float64
	}{
		{"start", 1, 1, nil, 0},
		{"half", 1, 0.5, nil, 0.5},
		{"overshoot", 1, -0.3, nil, 1},
		{"zero_duration", 0, 0, nil, 1},
		{"negative_duration", -1, 1, nil, 1},
		{"above_duration", 1, 2, nil, 0},
		{"eased_end", 1, 0, ease.InQuad, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FadeProgress(tc.duration, tc.remaining, tc.fn); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSlideEasesToZero(t *testing.T) {
	p := newPipeline(t)
	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TransformComponent, component.NewTransform(0, 0))
	_ = ecs.Add(p.w, e, component.SlideComponent, component.Slide{FromX: 10, Duration: 1, Ease: ease.Linear})

	p.step(t, 0.5)
	if got := p.transform(t, e).X; math.Abs(got-5) > 1e-6 {
		t.Fatalf("half way X = %v, want 5", got)
	}
	p.step(t, 0.5)
	p.step(t, 0.5)
	if got := p.transform(t, e).X; got != 0 {
		t.Fatalf("finished X = %v, want 0", got)
	}
}

func TestFacingAfterBlend(t *testing.T) {
	p := newPipeline(t)
	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TransformComponent, component.Transform{ScaleX: 2, ScaleY: 1})
	_ = ecs.Add(p.w, e, component.OffsetComponent, component.Offset{ScaleX: 1.5})
	_ = ecs.Add(p.w, e, component.FacingComponent, component.Facing{Left: true})

	for frame := 1; frame <= 3; frame++ {
		p.step(t, 1.0/60)
		g, _ := ecs.Get(p.w, e, component.GlobalTransformComponent)
		if a := g.GeoM.Element(0, 0); a != -3 {
			t.Fatalf("frame %d: global scale x = %v, want -3", frame, a)
		}
		b, _ := ecs.Get(p.w, e, component.TransformBackupComponent)
		if b.Saved.ScaleX != 2 {
			t.Fatalf("frame %d: facing leaked into base: %v", frame, b.Saved.ScaleX)
		}
	}
}

func TestPropagateHierarchy(t *testing.T) {
	w := ecs.NewWorld()
	s := ecs.NewScheduler()
	InstallAnimation(w, s)

	parent := w.CreateEntity()
	_ = ecs.Add(w, parent, component.TransformComponent, component.Transform{X: 10, ScaleX: 2, ScaleY: 2})
	child := w.CreateEntity()
	_ = ecs.Add(w, child, component.TransformComponent, component.NewTransform(5, 1))
	_ = ecs.Add(w, child, component.ParentComponent, component.Parent{Entity: uint64(parent)})
	orphan := w.CreateEntity()
	_ = ecs.Add(w, orphan, component.TransformComponent, component.NewTransform(7, 7))
	_ = ecs.Add(w, orphan, component.ParentComponent, component.Parent{Entity: uint64(orphan)})

	NewPropagateSystem().Update(w)

	g, _ := ecs.Get(w, child, component.GlobalTransformComponent)
	if x, y := g.Translation(); x != 20 || y != 2 {
		t.Fatalf("child global = (%v, %v), want (20, 2)", x, y)
	}
	g, _ = ecs.Get(w, orphan, component.GlobalTransformComponent)
	if x, y := g.Translation(); x != 7 || y != 7 {
		t.Fatalf("self-parented global = (%v, %v), want (7, 7)", x, y)
	}
}

func TestPixelSnapOnlyTouchesGlobal(t *testing.T) {
	p := newPipeline(t)
	e := p.w.CreateEntity()
	_ = ecs.Add(p.w, e, component.TransformComponent, component.NewTransform(1.4, 2.6))
	_ = ecs.Add(p.w, e, component.PixelSnapComponent, component.PixelSnap{})

	p.step(t, 1.0/60)
	g, _ := ecs.Get(p.w, e, component.GlobalTransformComponent)
	if x, y := g.Translation(); x != 1 || y != 3 {
		t.Fatalf("snapped global = (%v, %v), want (1, 3)", x, y)
	}
	if tr := p.transform(t, e); tr.X != 1.4 || tr.Y != 2.6 {
		t.Fatalf("local transform changed: %+v", tr)
	}
}
