// Package demo holds the teaching scenes: each one owns its vertex data and
// transforms, reacts to keys and time, and reports the matrices a driver
// uploads.
package demo

import (
	"fmt"
	"image/color"
	"sort"

	"glxform"
)

type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Mesh is interleaved float32 vertex data drawn as a triangle list.
type Mesh struct {
	Data         []float32
	PositionSize int // 2 or 3 floats
	Stride       int // floats per vertex
	ColorOffset  int // float offset of RGB within a vertex, -1 if none
	Count        int
	Color        color.RGBA // used when ColorOffset < 0
}

// Position returns vertex i as a point.
func (m Mesh) Position(i int) glxform.Vector4 {
	b := i * m.Stride
	if m.PositionSize == 2 {
		return glxform.V2(m.Data[b], m.Data[b+1])
	}
	return glxform.V3(m.Data[b], m.Data[b+1], m.Data[b+2])
}

// VertexColor returns the color of vertex i.
func (m Mesh) VertexColor(i int) color.RGBA {
	if m.ColorOffset < 0 {
		return m.Color
	}
	b := i*m.Stride + m.ColorOffset
	return color.RGBA{unit8(m.Data[b]), unit8(m.Data[b+1]), unit8(m.Data[b+2]), 255}
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Matrices are the transforms a scene wants applied this frame.
type Matrices struct {
	Model, View, Projection glxform.Matrix4
}

// MVP returns Projection·View·Model.
func (m Matrices) MVP() glxform.Matrix4 {
	mvp := m.Projection
	mvp.Multiply(m.View).Multiply(m.Model)
	return mvp
}

type Scene interface {
	Name() string
	Mesh() Mesh
	// Resize sets the drawable size, used for the aspect ratio.
	Resize(width, height int) error
	// Update advances the scene; elapsed and dt are in seconds.
	Update(elapsed, dt float64) error
	OnKey(k Key) error
	Matrices() Matrices
	// Info is a short status line for a title bar or log.
	Info() string
}

var registry = map[string]func() Scene{
	"rotated-triangle": func() Scene { return NewRotatedTriangle() },
	"ortho-view":       func() Scene { return NewOrthoView() },
	"look-at":          func() Scene { return NewLookAt() },
	"perspective-view": func() Scene { return NewPerspectiveView() },
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh scene by name.
func Lookup(name string) (Scene, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("demo: unknown scene %q (have %v)", name, Names())
	}
	return mk(), nil
}
