package demo

import (
	"fmt"
	"image/color"
	"math"

	"glxform"
)

// must panics on a setup error; scene constructors only pass constants.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

func identityMatrices() Matrices {
	return Matrices{
		Model:      glxform.Identity(),
		View:       glxform.Identity(),
		Projection: glxform.Identity(),
	}
}

// RotatedTriangle spins a flat triangle about +z.
type RotatedTriangle struct {
	zRotation float64 // degrees
	speed     float64 // degrees per second
	m         Matrices
}

func NewRotatedTriangle() *RotatedTriangle {
	s := &RotatedTriangle{zRotation: 25, speed: 100, m: identityMatrices()}
	must(s.m.Model.SetRotate(float32(s.zRotation), 0, 0, 1))
	return s
}

func (s *RotatedTriangle) Name() string { return "rotated-triangle" }

func (s *RotatedTriangle) Mesh() Mesh {
	return Mesh{
		Data:         []float32{0.0, 0.06, -0.1, -0.1, 0.1, -0.1},
		PositionSize: 2,
		Stride:       2,
		ColorOffset:  -1,
		Count:        3,
		Color:        color.RGBA{255, 0, 0, 255},
	}
}

func (s *RotatedTriangle) Resize(int, int) error { return nil }

func (s *RotatedTriangle) Update(_, dt float64) error {
	s.zRotation += dt * s.speed
	if s.zRotation > 360 {
		s.zRotation = 0
	}
	return s.m.Model.SetRotate(float32(s.zRotation), 0, 0, 1)
}

func (s *RotatedTriangle) OnKey(Key) error { return nil }

func (s *RotatedTriangle) Matrices() Matrices { return s.m }

func (s *RotatedTriangle) Info() string {
	return fmt.Sprintf("rotation = %.1f°", s.zRotation)
}

// Two overlapping triangles at different depths; xyz rgb per vertex.
var depthPair = []float32{
	0.0, 0.5, 0.2, 1.0, 1.0, 1.0,
	-0.5, -0.5, 0.2, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.2, 1.0, 1.0, 0.0,

	0.5, 0.4, 0.3, 1.0, 0.4, 0.4,
	-0.5, 0.4, 0.3, 1.0, 1.0, 0.4,
	0.0, -0.6, 0.3, 1.0, 1.0, 0.4,
}

func colorMesh(data []float32) Mesh {
	return Mesh{
		Data:         data,
		PositionSize: 3,
		Stride:       6,
		ColorOffset:  3,
		Count:        len(data) / 6,
	}
}

// planeStep is the near/far increment per key press.
const planeStep = 0.05

// OrthoView moves the near and far planes of an orthographic box with the
// arrow keys. Planes are kept as whole steps so near == far is exact.
type OrthoView struct {
	near, far int // in planeStep units
	m         Matrices
}

func NewOrthoView() *OrthoView {
	s := &OrthoView{near: 0, far: 10, m: identityMatrices()}
	must(s.apply())
	return s
}

func (s *OrthoView) Name() string { return "ortho-view" }

func (s *OrthoView) Mesh() Mesh { return colorMesh(depthPair) }

func (s *OrthoView) Resize(int, int) error { return nil }

func (s *OrthoView) Update(float64, float64) error { return nil }

func (s *OrthoView) apply() error {
	return s.m.Projection.SetOrtho(-1, 1, -1, 1, s.Near(), s.Far())
}

// Near returns the near plane distance.
func (s *OrthoView) Near() float32 { return float32(s.near) * planeStep }

// Far returns the far plane distance.
func (s *OrthoView) Far() float32 { return float32(s.far) * planeStep }

// OnKey moves near with Left/Right and far with Up/Down. A move that would
// make the projection degenerate is undone and reported.
func (s *OrthoView) OnKey(k Key) error {
	near, far := s.near, s.far
	switch k {
	case KeyLeft:
		s.near--
	case KeyRight:
		s.near++
	case KeyUp:
		s.far++
	case KeyDown:
		s.far--
	default:
		return nil
	}
	if err := s.apply(); err != nil {
		s.near, s.far = near, far
		return err
	}
	return nil
}

func (s *OrthoView) Matrices() Matrices { return s.m }

func (s *OrthoView) Info() string {
	return fmt.Sprintf("nearPlane = %.2f farPlane = %.2f", s.Near(), s.Far())
}

var lookAtTriangles = []float32{
	0.0, 0.5, -0.4, 1.0, 1.0, 1.0,
	-0.5, -0.5, -0.4, 0.0, 1.0, 0.0,
	0.5, -0.5, -0.4, 1.0, 1.0, 0.0,

	0.5, 0.4, 0.2, 1.0, 0.4, 0.4,
	-0.5, 0.4, 0.2, 1.0, 1.0, 0.4,
	0.0, -0.6, 0.2, 1.0, 1.0, 0.4,
}

// LookAt views two triangles from an eye that slides along x.
type LookAt struct {
	eye, center, up glxform.Vector4
	near, far       float32
	m               Matrices
}

func NewLookAt() *LookAt {
	s := &LookAt{
		eye:    glxform.V3(0.2, 0.2, 0.25),
		center: glxform.V3(0, 0, 0),
		up:     glxform.Dir(0, 1, 0),
		near:   -2,
		far:    4,
		m:      identityMatrices(),
	}
	must(s.apply())
	return s
}

func (s *LookAt) Name() string { return "look-at" }

func (s *LookAt) Mesh() Mesh { return colorMesh(lookAtTriangles) }

func (s *LookAt) Resize(int, int) error { return nil }

func (s *LookAt) Update(float64, float64) error { return nil }

func (s *LookAt) apply() error {
	m := s.m
	if err := m.View.SetLookAt(s.eye, s.center, s.up); err != nil {
		return err
	}
	if err := m.Projection.SetOrtho(-1, 1, -1, 1, s.near, s.far); err != nil {
		return err
	}
	s.m = m
	return nil
}

// Eye returns the camera position.
func (s *LookAt) Eye() glxform.Vector4 { return s.eye }

func (s *LookAt) OnKey(k Key) error {
	eye := s.eye
	switch k {
	case KeyLeft:
		s.eye.X -= planeStep
	case KeyRight:
		s.eye.X += planeStep
	default:
		return nil
	}
	if err := s.apply(); err != nil {
		s.eye = eye
		return err
	}
	return nil
}

func (s *LookAt) Matrices() Matrices { return s.m }

func (s *LookAt) Info() string {
	return fmt.Sprintf("eye = %v", s.eye)
}

var perspectiveTriangles = []float32{
	0.0, 0.5, -1, 1.0, 0.0, 0.0,
	-0.5, -0.5, -1, 1.0, 1.0, 0.0,
	0.5, -0.5, -1, 1.0, 1.0, 0.0,

	0.0, 0.5, -0.2, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.2, 0.0, 1.0, 0.0,
	0.5, -0.5, -0.2, 0.0, 1.0, 0.0,
}

// PerspectiveView shows two same-sized triangles at different depths from
// an orbiting eye. Any key toggles between perspective and orthographic
// projection.
type PerspectiveView struct {
	eye, center, up glxform.Vector4
	perspective     bool
	aspect          float32
	m               Matrices
}

func NewPerspectiveView() *PerspectiveView {
	s := &PerspectiveView{
		eye:         glxform.V3(0, 0, 5),
		center:      glxform.V3(0, 0, -100),
		up:          glxform.Dir(0, 1, 0),
		perspective: true,
		aspect:      1,
		m:           identityMatrices(),
	}
	must(s.apply())
	return s
}

func (s *PerspectiveView) Name() string { return "perspective-view" }

func (s *PerspectiveView) Mesh() Mesh { return colorMesh(perspectiveTriangles) }

// Resize updates the aspect ratio. An empty size is rejected and the
// previous projection is kept.
func (s *PerspectiveView) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("demo: %s: invalid size %dx%d", s.Name(), width, height)
	}
	aspect := s.aspect
	s.aspect = float32(width) / float32(height)
	if err := s.apply(); err != nil {
		s.aspect = aspect
		return err
	}
	return nil
}

// Perspective reports whether the perspective projection is active.
func (s *PerspectiveView) Perspective() bool { return s.perspective }

func (s *PerspectiveView) apply() error {
	m := s.m
	if err := m.View.SetLookAt(s.eye, s.center, s.up); err != nil {
		return err
	}
	var err error
	if s.perspective {
		err = m.Projection.SetPerspective(30, s.aspect, 1, 100)
	} else {
		err = m.Projection.SetOrtho(-1, 1, -1, 1, -10, 22)
	}
	if err != nil {
		return err
	}
	s.m = m
	return nil
}

func (s *PerspectiveView) Update(elapsed, _ float64) error {
	s.eye.X = float32(math.Sin(elapsed))
	s.eye.Y = float32(-math.Sin(elapsed / 2))
	return s.apply()
}

func (s *PerspectiveView) OnKey(Key) error {
	s.perspective = !s.perspective
	if err := s.apply(); err != nil {
		s.perspective = !s.perspective
		return err
	}
	return nil
}

func (s *PerspectiveView) Matrices() Matrices { return s.m }

func (s *PerspectiveView) Info() string {
	mode := "perspective"
	if !s.perspective {
		mode = "ortho"
	}
	return fmt.Sprintf("%s, eye = %v", mode, s.eye)
}
