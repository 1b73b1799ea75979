// Package glxform builds 4x4 model, view and projection transforms for
// upload to a GL shader uniform.
//
// Matrices are stored column-major: Elements()[0:4] is the first column, so
// the array can be passed to UniformMatrix4fv with transpose=false. Vectors
// are column vectors; M.TransformPoint(v) computes M·v.
//
// Set* methods replace the whole matrix. The builders that have
// preconditions (rotation axis, clip planes, look-at basis) validate them
// first and return an error wrapping ErrDomain without touching the
// receiver. Multiply and the accumulating methods (Translate, Rotate, ...)
// right-multiply: m = m · x. Building P·V·M therefore reads
// p.Multiply(v); p.Multiply(model).
package glxform

import (
	"fmt"
	"math"
	"strings"
)

// Matrix4 is a 4x4 transform in column-major order.
// The zero value is the zero matrix; use NewMatrix4 or Identity.
type Matrix4 struct {
	e [16]float32
}

type mat [16]float64

var identity = mat{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// NewMatrix4 returns a new identity matrix.
func NewMatrix4() *Matrix4 {
	m := Identity()
	return &m
}

// Identity returns the identity matrix by value.
func Identity() Matrix4 {
	var m Matrix4
	m.store(identity)
	return m
}

// FromElements builds a matrix from 16 column-major components.
func FromElements(e [16]float32) Matrix4 {
	return Matrix4{e: e}
}

func (m *Matrix4) store(a mat) {
	for i, v := range a {
		m.e[i] = float32(v)
	}
}

func (m *Matrix4) load() mat {
	var a mat
	for i, v := range m.e {
		a[i] = float64(v)
	}
	return a
}

// Elements returns a copy of the 16 components in column-major order.
func (m *Matrix4) Elements() [16]float32 {
	return m.e
}

// At returns the component at row r, column c.
func (m *Matrix4) At(r, c int) float32 {
	return m.e[c*4+r]
}

// Set copies o into m.
func (m *Matrix4) Set(o Matrix4) *Matrix4 {
	m.e = o.e
	return m
}

// SetElements replaces m with 16 column-major components.
func (m *Matrix4) SetElements(e [16]float32) *Matrix4 {
	m.e = e
	return m
}

func (m *Matrix4) SetIdentity() *Matrix4 {
	m.store(identity)
	return m
}

func translation(x, y, z float32) mat {
	a := identity
	a[12], a[13], a[14] = float64(x), float64(y), float64(z)
	return a
}

func (m *Matrix4) SetTranslate(x, y, z float32) *Matrix4 {
	m.store(translation(x, y, z))
	return m
}

func scaling(x, y, z float32) mat {
	a := identity
	a[0], a[5], a[10] = float64(x), float64(y), float64(z)
	return a
}

func (m *Matrix4) SetScale(x, y, z float32) *Matrix4 {
	m.store(scaling(x, y, z))
	return m
}

func rotation(angle, x, y, z float32) (mat, error) {
	axis, ok := vec3{float64(x), float64(y), float64(z)}.normalize()
	if !ok || !finite(float64(angle)) {
		return mat{}, domainErr("rotate", "axis (%g, %g, %g) angle %g", x, y, z, angle)
	}
	rad := DegToRad(float64(angle))
	s, c := math.Sin(rad), math.Cos(rad)
	nc := 1 - c
	ax, ay, az := axis[0], axis[1], axis[2]
	xy, yz, zx := ax*ay, ay*az, az*ax
	xs, ys, zs := ax*s, ay*s, az*s

	return mat{
		ax*ax*nc + c, xy*nc + zs, zx*nc - ys, 0,
		xy*nc - zs, ay*ay*nc + c, yz*nc + xs, 0,
		zx*nc + ys, yz*nc - xs, az*az*nc + c, 0,
		0, 0, 0, 1,
	}, nil
}

// SetRotate sets m to a right-handed rotation of angle degrees about the
// axis (x, y, z). The axis does not need to be normalized.
func (m *Matrix4) SetRotate(angle, x, y, z float32) error {
	a, err := rotation(angle, x, y, z)
	if err != nil {
		return err
	}
	m.store(a)
	return nil
}

func ortho(left, right, bottom, top, near, far float32) (mat, error) {
	if left == right || bottom == top || near == far {
		return mat{}, domainErr("ortho", "left=%g right=%g bottom=%g top=%g near=%g far=%g",
			left, right, bottom, top, near, far)
	}
	l, r, b, t, n, f := float64(left), float64(right), float64(bottom), float64(top), float64(near), float64(far)
	if !finite(l, r, b, t, n, f) {
		return mat{}, domainErr("ortho", "non-finite bound")
	}
	rw, rh, rd := 1/(r-l), 1/(t-b), 1/(f-n)

	return mat{
		2 * rw, 0, 0, 0,
		0, 2 * rh, 0, 0,
		0, 0, -2 * rd, 0,
		-(r + l) * rw, -(t + b) * rh, -(f + n) * rd, 1,
	}, nil
}

// SetOrtho sets m to an orthographic projection of the eye-space box
// [left,right]×[bottom,top]×[-near,-far] onto the clip cube. near and far are
// distances along -z and may be negative.
func (m *Matrix4) SetOrtho(left, right, bottom, top, near, far float32) error {
	a, err := ortho(left, right, bottom, top, near, far)
	if err != nil {
		return err
	}
	m.store(a)
	return nil
}

func frustum(left, right, bottom, top, near, far float32) (mat, error) {
	if left == right || bottom == top || near == far || near <= 0 || far <= 0 {
		return mat{}, domainErr("frustum", "left=%g right=%g bottom=%g top=%g near=%g far=%g",
			left, right, bottom, top, near, far)
	}
	l, r, b, t, n, f := float64(left), float64(right), float64(bottom), float64(top), float64(near), float64(far)
	if !finite(l, r, b, t, n, f) {
		return mat{}, domainErr("frustum", "non-finite bound")
	}
	rw, rh, rd := 1/(r-l), 1/(t-b), 1/(f-n)

	return mat{
		2 * n * rw, 0, 0, 0,
		0, 2 * n * rh, 0, 0,
		(r + l) * rw, (t + b) * rh, -(f + n) * rd, -1,
		0, 0, -2 * n * f * rd, 0,
	}, nil
}

// SetFrustum sets m to a perspective projection of the frustum whose near
// plane spans [left,right]×[bottom,top]. near and far must be positive.
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) error {
	a, err := frustum(left, right, bottom, top, near, far)
	if err != nil {
		return err
	}
	m.store(a)
	return nil
}

func perspective(fovy, aspect, near, far float32) (mat, error) {
	if !(fovy > 0 && fovy < 180) || !(aspect > 0) || !(near > 0) || !(far > near) ||
		!finite(float64(aspect), float64(far)) {
		return mat{}, domainErr("perspective", "fovy=%g aspect=%g near=%g far=%g", fovy, aspect, near, far)
	}
	n, f := float64(near), float64(far)
	half := DegToRad(float64(fovy)) / 2
	ct := math.Cos(half) / math.Sin(half)
	rd := 1 / (f - n)

	return mat{
		ct / float64(aspect), 0, 0, 0,
		0, ct, 0, 0,
		0, 0, -(f + n) * rd, -1,
		0, 0, -2 * n * f * rd, 0,
	}, nil
}

// SetPerspective sets m to a symmetric perspective projection with vertical
// field of view fovy degrees and aspect ratio width/height.
func (m *Matrix4) SetPerspective(fovy, aspect, near, far float32) error {
	a, err := perspective(fovy, aspect, near, far)
	if err != nil {
		return err
	}
	m.store(a)
	return nil
}

func lookAt(eye, center, up Vector4) (mat, error) {
	e := vec3Of(eye)
	f, ok := vec3Of(center).sub(e).normalize()
	if !ok {
		return mat{}, domainErr("look-at", "eye %v coincides with center %v", eye, center)
	}
	s, ok := f.cross(vec3Of(up)).normalize()
	if !ok {
		return mat{}, domainErr("look-at", "up %v is parallel to the view direction", up)
	}
	u := s.cross(f)

	return mat{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-s.dot(e), -u.dot(e), f.dot(e), 1,
	}, nil
}

// SetLookAt sets m to a view matrix for a camera at eye looking at center.
// up only needs to approximate the up direction; it is re-orthogonalized
// against the view direction. Only the xyz parts of the vectors are used.
func (m *Matrix4) SetLookAt(eye, center, up Vector4) error {
	a, err := lookAt(eye, center, up)
	if err != nil {
		return err
	}
	m.store(a)
	return nil
}

func mul(a, b mat) mat {
	var r mat
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = a[row]*b[c*4] + a[4+row]*b[c*4+1] +
				a[8+row]*b[c*4+2] + a[12+row]*b[c*4+3]
		}
	}
	return r
}

// Mul returns a·b.
func Mul(a, b Matrix4) Matrix4 {
	var r Matrix4
	r.store(mul(a.load(), b.load()))
	return r
}

// Multiply sets m = m·o.
func (m *Matrix4) Multiply(o Matrix4) *Matrix4 {
	m.store(mul(m.load(), o.load()))
	return m
}

func (m *Matrix4) concat(b mat) {
	m.store(mul(m.load(), b))
}

// Translate sets m = m·T(x, y, z).
func (m *Matrix4) Translate(x, y, z float32) *Matrix4 {
	m.concat(translation(x, y, z))
	return m
}

// Scale sets m = m·S(x, y, z).
func (m *Matrix4) Scale(x, y, z float32) *Matrix4 {
	m.concat(scaling(x, y, z))
	return m
}

// Rotate sets m = m·R(angle, axis).
func (m *Matrix4) Rotate(angle, x, y, z float32) error {
	a, err := rotation(angle, x, y, z)
	if err != nil {
		return err
	}
	m.concat(a)
	return nil
}

// Ortho sets m = m·Ortho(...).
func (m *Matrix4) Ortho(left, right, bottom, top, near, far float32) error {
	a, err := ortho(left, right, bottom, top, near, far)
	if err != nil {
		return err
	}
	m.concat(a)
	return nil
}

// Frustum sets m = m·Frustum(...).
func (m *Matrix4) Frustum(left, right, bottom, top, near, far float32) error {
	a, err := frustum(left, right, bottom, top, near, far)
	if err != nil {
		return err
	}
	m.concat(a)
	return nil
}

// Perspective sets m = m·Perspective(...).
func (m *Matrix4) Perspective(fovy, aspect, near, far float32) error {
	a, err := perspective(fovy, aspect, near, far)
	if err != nil {
		return err
	}
	m.concat(a)
	return nil
}

// LookAt sets m = m·LookAt(...).
func (m *Matrix4) LookAt(eye, center, up Vector4) error {
	a, err := lookAt(eye, center, up)
	if err != nil {
		return err
	}
	m.concat(a)
	return nil
}

// TransformPoint returns m·v.
func (m *Matrix4) TransformPoint(v Vector4) Vector4 {
	a := m.load()
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	var r [4]float64
	for row := 0; row < 4; row++ {
		r[row] = a[row]*x + a[4+row]*y + a[8+row]*z + a[12+row]*w
	}
	return Vector4{float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])}
}

func (m *Matrix4) Transpose() *Matrix4 {
	e := m.e
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.e[c*4+r] = e[r*4+c]
		}
	}
	return m
}

func inverse(a mat) (mat, bool) {
	var inv mat
	inv[0] = a[5]*a[10]*a[15] - a[5]*a[11]*a[14] - a[9]*a[6]*a[15] + a[9]*a[7]*a[14] + a[13]*a[6]*a[11] - a[13]*a[7]*a[10]
	inv[4] = -a[4]*a[10]*a[15] + a[4]*a[11]*a[14] + a[8]*a[6]*a[15] - a[8]*a[7]*a[14] - a[12]*a[6]*a[11] + a[12]*a[7]*a[10]
	inv[8] = a[4]*a[9]*a[15] - a[4]*a[11]*a[13] - a[8]*a[5]*a[15] + a[8]*a[7]*a[13] + a[12]*a[5]*a[11] - a[12]*a[7]*a[9]
	inv[12] = -a[4]*a[9]*a[14] + a[4]*a[10]*a[13] + a[8]*a[5]*a[14] - a[8]*a[6]*a[13] - a[12]*a[5]*a[10] + a[12]*a[6]*a[9]

	inv[1] = -a[1]*a[10]*a[15] + a[1]*a[11]*a[14] + a[9]*a[2]*a[15] - a[9]*a[3]*a[14] - a[13]*a[2]*a[11] + a[13]*a[3]*a[10]
	inv[5] = a[0]*a[10]*a[15] - a[0]*a[11]*a[14] - a[8]*a[2]*a[15] + a[8]*a[3]*a[14] + a[12]*a[2]*a[11] - a[12]*a[3]*a[10]
	inv[9] = -a[0]*a[9]*a[15] + a[0]*a[11]*a[13] + a[8]*a[1]*a[15] - a[8]*a[3]*a[13] - a[12]*a[1]*a[11] + a[12]*a[3]*a[9]
	inv[13] = a[0]*a[9]*a[14] - a[0]*a[10]*a[13] - a[8]*a[1]*a[14] + a[8]*a[2]*a[13] + a[12]*a[1]*a[10] - a[12]*a[2]*a[9]

	inv[2] = a[1]*a[6]*a[15] - a[1]*a[7]*a[14] - a[5]*a[2]*a[15] + a[5]*a[3]*a[14] + a[13]*a[2]*a[7] - a[13]*a[3]*a[6]
	inv[6] = -a[0]*a[6]*a[15] + a[0]*a[7]*a[14] + a[4]*a[2]*a[15] - a[4]*a[3]*a[14] - a[12]*a[2]*a[7] + a[12]*a[3]*a[6]
	inv[10] = a[0]*a[5]*a[15] - a[0]*a[7]*a[13] - a[4]*a[1]*a[15] + a[4]*a[3]*a[13] + a[12]*a[1]*a[7] - a[12]*a[3]*a[5]
	inv[14] = -a[0]*a[5]*a[14] + a[0]*a[6]*a[13] + a[4]*a[1]*a[14] - a[4]*a[2]*a[13] - a[12]*a[1]*a[6] + a[12]*a[2]*a[5]

	inv[3] = -a[1]*a[6]*a[11] + a[1]*a[7]*a[10] + a[5]*a[2]*a[11] - a[5]*a[3]*a[10] - a[9]*a[2]*a[7] + a[9]*a[3]*a[6]
	inv[7] = a[0]*a[6]*a[11] - a[0]*a[7]*a[10] - a[4]*a[2]*a[11] + a[4]*a[3]*a[10] + a[8]*a[2]*a[7] - a[8]*a[3]*a[6]
	inv[11] = -a[0]*a[5]*a[11] + a[0]*a[7]*a[9] + a[4]*a[1]*a[11] - a[4]*a[3]*a[9] - a[8]*a[1]*a[7] + a[8]*a[3]*a[5]
	inv[15] = a[0]*a[5]*a[10] - a[0]*a[6]*a[9] - a[4]*a[1]*a[10] + a[4]*a[2]*a[9] + a[8]*a[1]*a[6] - a[8]*a[2]*a[5]

	det := a[0]*inv[0] + a[1]*inv[4] + a[2]*inv[8] + a[3]*inv[12]
	if det == 0 || !finite(det) {
		return mat{}, false
	}
	for i := range inv {
		inv[i] /= det
	}
	return inv, true
}

// SetInverseOf sets m to the inverse of o. A singular o yields ErrSingular
// and leaves m unchanged.
func (m *Matrix4) SetInverseOf(o Matrix4) error {
	inv, ok := inverse(o.load())
	if !ok {
		return fmt.Errorf("glxform: invert: %w", ErrSingular)
	}
	m.store(inv)
	return nil
}

func (m *Matrix4) Invert() error {
	return m.SetInverseOf(*m)
}

// ApproxEqual reports whether every component of m is within eps of o.
func (m *Matrix4) ApproxEqual(o Matrix4, eps float32) bool {
	for i := range m.e {
		d := m.e[i] - o.e[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

// String prints the matrix in row order, one row per line.
func (m *Matrix4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&b, "[%8.4f %8.4f %8.4f %8.4f]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
	return b.String()
}
