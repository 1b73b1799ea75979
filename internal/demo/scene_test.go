package demo

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"glxform"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		s, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if s.Name() != name {
			t.Errorf("Lookup(%q).Name() = %q", name, s.Name())
		}
		m := s.Mesh()
		if m.Count == 0 || len(m.Data) != m.Count*m.Stride {
			t.Errorf("%s: mesh has %d floats for %d vertices of stride %d", name, len(m.Data), m.Count, m.Stride)
		}
	}
	if _, err := Lookup("nope"); err == nil {
		t.Fatal("expected error for unknown scene")
	}
}

func TestRotatedTriangleWraps(t *testing.T) {
	s := NewRotatedTriangle()
	if err := s.Update(0, 3); err != nil { // 25 + 300
		t.Fatal(err)
	}
	if s.zRotation != 325 {
		t.Fatalf("zRotation = %g", s.zRotation)
	}
	if err := s.Update(0, 0.5); err != nil { // 375 wraps
		t.Fatal(err)
	}
	if s.zRotation != 0 {
		t.Fatalf("zRotation = %g, want 0 after wrap", s.zRotation)
	}
	model := s.Matrices().Model
	if !model.ApproxEqual(glxform.Identity(), 1e-6) {
		t.Fatalf("model after wrap:\n%s", &model)
	}
}

func TestOrthoViewRejectsEqualPlanes(t *testing.T) {
	s := NewOrthoView()
	for i := 0; i < 9; i++ {
		if err := s.OnKey(KeyDown); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	before := s.Matrices().Projection
	err := s.OnKey(KeyDown) // far would reach near
	if !errors.Is(err, glxform.ErrDomain) {
		t.Fatalf("got %v, want ErrDomain", err)
	}
	if s.Far() != s.Near()+planeStep {
		t.Fatalf("far not reverted: near=%g far=%g", s.Near(), s.Far())
	}
	after := s.Matrices().Projection
	if after.Elements() != before.Elements() {
		t.Fatal("projection changed after rejected key")
	}

	// Moving near away still works.
	if err := s.OnKey(KeyLeft); err != nil {
		t.Fatal(err)
	}
}

func TestOrthoViewNegativeNear(t *testing.T) {
	s := NewOrthoView()
	for i := 0; i < 4; i++ {
		_ = s.OnKey(KeyLeft)
	}
	p := s.Matrices().Projection
	// near = -0.2 puts the near plane at z = +0.2 in eye space.
	got := p.TransformPoint(glxform.V3(0, 0, 0.2))
	if diff := cmp.Diff(glxform.V4(0, 0, -1, 1), got, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestLookAtKeysMoveEye(t *testing.T) {
	s := NewLookAt()
	_ = s.OnKey(KeyRight)
	_ = s.OnKey(KeyRight)
	if d := s.Eye().X - 0.3; d > 1e-6 || d < -1e-6 {
		t.Fatalf("eye.x = %g", s.Eye().X)
	}
	want := glxform.Identity()
	if err := want.SetLookAt(s.Eye(), glxform.V3(0, 0, 0), glxform.Dir(0, 1, 0)); err != nil {
		t.Fatal(err)
	}
	view := s.Matrices().View
	if !view.ApproxEqual(want, 1e-6) {
		t.Fatalf("view:\n%swant:\n%s", &view, &want)
	}
}

func TestPerspectiveViewToggle(t *testing.T) {
	s := NewPerspectiveView()
	if err := s.Resize(800, 600); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(1, 0.016); err != nil {
		t.Fatal(err)
	}
	persp := s.Matrices().Projection
	if persp.At(3, 2) != -1 {
		t.Fatalf("expected perspective projection:\n%s", &persp)
	}
	if err := s.OnKey(KeyOther); err != nil {
		t.Fatal(err)
	}
	if s.Perspective() {
		t.Fatal("key did not toggle to ortho")
	}
	ortho := s.Matrices().Projection
	if ortho.At(3, 2) != 0 || ortho.At(3, 3) != 1 {
		t.Fatalf("expected orthographic projection:\n%s", &ortho)
	}
}

func TestPerspectiveViewIgnoresEmptySize(t *testing.T) {
	s := NewPerspectiveView()
	before := s.Matrices().Projection
	if err := s.Resize(0, 0); err == nil {
		t.Fatal("expected error for empty size")
	}
	after := s.Matrices().Projection
	if before.Elements() != after.Elements() {
		t.Fatal("zero size changed projection")
	}
}

func TestConstructorsBuildProjections(t *testing.T) {
	for _, name := range Names() {
		s, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Resize(640, 480); err != nil {
			t.Fatalf("%s: Resize: %v", name, err)
		}
		m := s.Matrices()
		if name != "rotated-triangle" && m.Projection.ApproxEqual(glxform.Identity(), 1e-6) {
			t.Errorf("%s: projection left at identity", name)
		}
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("must did not panic on error")
		}
	}()
	var m glxform.Matrix4
	must(m.SetOrtho(1, 1, -1, 1, 0, 1))
}

func TestMVPOrder(t *testing.T) {
	m := Matrices{
		Model:      *glxform.NewMatrix4().SetTranslate(1, 0, 0),
		View:       *glxform.NewMatrix4().SetScale(2, 2, 2),
		Projection: *glxform.NewMatrix4().SetTranslate(0, 0, -1),
	}
	mvp := m.MVP()
	got := mvp.TransformPoint(glxform.V3(0, 0, 0))
	if got != glxform.V3(2, 0, -1) {
		t.Fatalf("P·V·M applied to origin = %v", got)
	}
}

func TestMeshAccessors(t *testing.T) {
	m := colorMesh(depthPair)
	if p := m.Position(1); p != glxform.V3(-0.5, -0.5, 0.2) {
		t.Fatalf("Position(1) = %v", p)
	}
	if c := m.VertexColor(1); c != (color.RGBA{0, 255, 0, 255}) {
		t.Fatalf("VertexColor(1) = %v", c)
	}
	tri := NewRotatedTriangle().Mesh()
	if p := tri.Position(2); p != glxform.V2(0.1, -0.1) {
		t.Fatalf("Position(2) = %v", p)
	}
	if c := tri.VertexColor(0); c != tri.Color {
		t.Fatalf("VertexColor = %v", c)
	}
}
