package glxform

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVectorConstructors(t *testing.T) {
	tests := []struct {
		got, want Vector4
	}{
		{V2(1, 2), Vector4{1, 2, 0, 1}},
		{V3(1, 2, 3), Vector4{1, 2, 3, 1}},
		{V4(1, 2, 3, 4), Vector4{1, 2, 3, 4}},
		{Dir(1, 2, 3), Vector4{1, 2, 3, 0}},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %v, want %v", tc.got, tc.want)
		}
	}
}

func TestVectorArithmetic(t *testing.T) {
	eye, center := V3(0, 0, 5), V3(0, 0, -100)
	if d := center.Sub(eye); d != Dir(0, 0, -105) {
		t.Fatalf("Sub = %v", d)
	}
	if s := eye.Add(Dir(1, 1, 1)); s != V3(1, 1, 6) {
		t.Fatalf("Add = %v", s)
	}
	if got := V3(1, 2, -3).Scale(2); got != V4(2, 4, -6, 2) {
		t.Fatalf("Scale = %v", got)
	}
	if got := V3(1, 2, 3).Dot(V4(4, 5, 6, 100)); got != 32 {
		t.Fatalf("Dot = %g, want 32 (w ignored)", got)
	}
	if got := Dir(1, 0, 0).Cross(Dir(0, 1, 0)); got != Dir(0, 0, 1) {
		t.Fatalf("Cross = %v", got)
	}
	if got := V3(3, 4, 0).Len(); got != 5 {
		t.Fatalf("Len = %g", got)
	}
}

func TestNormalize(t *testing.T) {
	n, err := V3(3, 0, 4).Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Vector4{0.6, 0, 0.8, 1}, n, approx); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	if _, err := V3(0, 0, 0).Normalize(); !errors.Is(err, ErrDomain) {
		t.Fatalf("zero vector: got %v, want ErrDomain", err)
	}
}

func TestVectorMgl32(t *testing.T) {
	v := V4(1, 2, 3, 4)
	if v.Vec4() != [4]float32{1, 2, 3, 4} || v.Vec3() != [3]float32{1, 2, 3} {
		t.Fatalf("mgl32 conversion mismatch: %v %v", v.Vec4(), v.Vec3())
	}
}
