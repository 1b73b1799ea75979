package glxform_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"glxform"
)

func ExampleFromMgl32() {
	m := glxform.FromMgl32(mgl32.Translate3D(1, 2, 3))
	fmt.Println(m.TransformPoint(glxform.V3(0, 0, 0)))
	// Output: (1, 2, 3, 1)
}

func ExampleMatrix4_Mgl32() {
	m := glxform.NewMatrix4().SetTranslate(1, 2, 3)
	fmt.Println(m.Mgl32().Mul4x1(glxform.V3(1, 1, 1).Vec4()))
	// Output: [2 3 4 1]
}

func ExampleVector4_Vec3() {
	fmt.Println(glxform.Dir(0, 3, 4).Vec3().Len())
	// Output: 5
}
