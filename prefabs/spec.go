package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

// SpriteSpec sizes the solid-color placeholder sprite. The origin is the
// sprite center unless TopLeft is set.
type SpriteSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	TopLeft bool    `yaml:"top_left"`
}

type ColorSpec struct {
	Key   string  `yaml:"key"`
	Alpha float32 `yaml:"alpha"`
}

type ColliderSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Static     bool    `yaml:"static"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type BobSpec struct {
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
}

type SlideSpec struct {
	FromX    float64 `yaml:"from_x"`
	FromY    float64 `yaml:"from_y"`
	Duration float64 `yaml:"duration"`
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	MoveSpeed   float64         `yaml:"move_speed"`
	JumpSpeed   float64         `yaml:"jump_speed"`
	Transform   TransformSpec   `yaml:"transform"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Color       ColorSpec       `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type CrateSpec struct {
	Name        string          `yaml:"name"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Color       ColorSpec       `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type LogoSpec struct {
	Name        string          `yaml:"name"`
	Transform   TransformSpec   `yaml:"transform"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Color       ColorSpec       `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	Bob         BobSpec         `yaml:"bob"`
	Slide       SlideSpec       `yaml:"slide"`
}
