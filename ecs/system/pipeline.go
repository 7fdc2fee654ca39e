package system

import (
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
)

// Labels shared by the animation pipeline so game code can order its own
// systems against it.
const (
	LabelRestore   = "animation.restore"
	LabelSave      = "animation.save"
	LabelBlend     = "animation.blend"
	LabelFade      = "animation.fade"
	LabelPropagate = "transform.propagate"
)

// InstallAnimation declares the structural requirements of the animation
// components and registers the restore, save, blend, facing, propagation
// and pixel-snap systems in their phases.
func InstallAnimation(w *ecs.World, s *ecs.Scheduler) {
	ecs.Require(w, component.TransformComponent, component.GlobalTransformComponent, func() component.GlobalTransform {
		return component.GlobalTransform{}
	})
	ecs.Require(w, component.TransformBackupComponent, component.TransformComponent, func() component.Transform {
		return component.NewTransform(0, 0)
	})
	ecs.Require(w, component.TintBackupComponent, component.TintComponent, func() component.Tint {
		return component.White
	})

	needsTransformBackup := func() component.Backup[component.Transform] { return component.Backup[component.Transform]{} }
	needsTintBackup := func() component.Backup[component.Tint] { return component.Backup[component.Tint]{} }
	ecs.Require(w, component.OffsetComponent, component.TransformBackupComponent, needsTransformBackup)
	ecs.Require(w, component.SlideComponent, component.TransformBackupComponent, needsTransformBackup)
	ecs.Require(w, component.BobComponent, component.TransformBackupComponent, needsTransformBackup)
	ecs.Require(w, component.FacingComponent, component.TransformBackupComponent, needsTransformBackup)
	ecs.Require(w, component.TintOffsetComponent, component.TintBackupComponent, needsTintBackup)
	ecs.Require(w, component.FadeInComponent, component.TintBackupComponent, needsTintBackup)
	ecs.Require(w, component.FadeOutComponent, component.TintBackupComponent, needsTintBackup)

	propagate := NewPropagateSystem()

	restoreTransform := NewRestoreSystem(component.TransformComponent, component.TransformBackupComponent)
	restoreTransform.Resync = propagate
	s.Add(ecs.PhaseFirst, restoreTransform, ecs.Label(LabelRestore))
	s.Add(ecs.PhaseFirst, NewRestoreSystem(component.TintComponent, component.TintBackupComponent), ecs.Label(LabelRestore))

	s.Add(ecs.PhaseSave, NewSaveSystem(component.TransformComponent, component.TransformBackupComponent), ecs.Label(LabelSave))
	s.Add(ecs.PhaseSave, NewSaveSystem(component.TintComponent, component.TintBackupComponent), ecs.Label(LabelSave))

	s.Chain(ecs.PhaseBlend, []ecs.System{
		NewOffsetSystem(),
		NewSlideSystem(),
		NewBobSystem(),
		NewTintOffsetSystem(),
	}, ecs.Label(LabelBlend))
	s.Add(ecs.PhaseBlend, NewFadeSystem(), ecs.Label(LabelFade), ecs.After(LabelBlend))

	s.Add(ecs.PhaseFacing, NewFacingSystem())
	s.Add(ecs.PhasePropagate, propagate, ecs.Label(LabelPropagate))
	s.Add(ecs.PhaseFinish, NewPixelSnapSystem())
}
