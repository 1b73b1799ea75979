package glxform

import "fmt"

// Vector4 is a homogeneous 4-component vector. W is 1 for points and 0 for
// directions; keeping it right is up to the caller.
type Vector4 struct {
	X, Y, Z, W float32
}

// V2 returns the point (x, y, 0, 1).
func V2(x, y float32) Vector4 {
	return Vector4{x, y, 0, 1}
}

// V3 returns the point (x, y, z, 1).
func V3(x, y, z float32) Vector4 {
	return Vector4{x, y, z, 1}
}

// V4 returns (x, y, z, w).
func V4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// Dir returns the direction (x, y, z, 0).
func Dir(x, y, z float32) Vector4 {
	return Vector4{x, y, z, 0}
}

func (v Vector4) Add(b Vector4) Vector4 {
	return Vector4{v.X + b.X, v.Y + b.Y, v.Z + b.Z, v.W + b.W}
}

// Sub subtracts all four components, so point - point is a direction.
func (v Vector4) Sub(b Vector4) Vector4 {
	return Vector4{v.X - b.X, v.Y - b.Y, v.Z - b.Z, v.W - b.W}
}

func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot is the 3-component dot product; W is ignored.
func (v Vector4) Dot(b Vector4) float32 {
	return float32(vec3Of(v).dot(vec3Of(b)))
}

// Cross is the 3-component cross product. The result is a direction (W=0).
func (v Vector4) Cross(b Vector4) Vector4 {
	c := vec3Of(v).cross(vec3Of(b))
	return Dir(float32(c[0]), float32(c[1]), float32(c[2]))
}

// Len is the length of the xyz part.
func (v Vector4) Len() float32 {
	return float32(vec3Of(v).len())
}

// Normalize scales xyz to unit length and keeps W. A zero-length vector
// yields ErrDomain.
func (v Vector4) Normalize() (Vector4, error) {
	n, ok := vec3Of(v).normalize()
	if !ok {
		return Vector4{}, domainErr("normalize", "zero-length vector %v", v)
	}
	return Vector4{float32(n[0]), float32(n[1]), float32(n[2]), v.W}, nil
}

func (v Vector4) Elements() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
