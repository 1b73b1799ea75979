package glxform

import "github.com/go-gl/mathgl/mgl32"

// Mgl32 returns m as an mgl32.Mat4. Both types are column-major, so the
// components are copied as-is.
func (m *Matrix4) Mgl32() mgl32.Mat4 {
	return mgl32.Mat4(m.e)
}

// FromMgl32 wraps an mgl32.Mat4.
func FromMgl32(a mgl32.Mat4) Matrix4 {
	return Matrix4{e: [16]float32(a)}
}

// Vec4 returns v as an mgl32.Vec4.
func (v Vector4) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{v.X, v.Y, v.Z, v.W}
}

// Vec3 drops W.
func (v Vector4) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
