package glxform

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// vec3 is the float64 working type used while building matrices; results are
// narrowed to float32 only when stored.
type vec3 [3]float64

func vec3Of(v Vector4) vec3 {
	return vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func (a vec3) sub(b vec3) vec3 {
	return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a vec3) dot(b vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a vec3) len() float64 {
	return math.Sqrt(a.dot(a))
}

// normalize returns a unit vector and false if a has zero or non-finite length.
func (a vec3) normalize() (vec3, bool) {
	l := a.len()
	if l == 0 || !finite(l) {
		return vec3{}, false
	}
	return vec3{a[0] / l, a[1] / l, a[2] / l}, true
}
