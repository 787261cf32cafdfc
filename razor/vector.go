package razor

import "math"

// Vec3 is a momentum three-vector in cartesian components (GeV).
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// R returns the magnitude of the vector.
func (v Vec3) R() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Mag2 returns the squared magnitude.
func (v Vec3) Mag2() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the scalar product with u.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Add returns the vector sum with u.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Pt returns the transverse component sqrt(x^2+y^2).
func (v Vec3) Pt() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Phi returns the azimuthal angle in (-pi, pi].
func (v Vec3) Phi() float64 {
	return math.Atan2(v.Y, v.X)
}

// FourVec is an energy-momentum four-vector in cartesian components (GeV).
type FourVec struct {
	Px float64 `json:"px"`
	Py float64 `json:"py"`
	Pz float64 `json:"pz"`
	E  float64 `json:"e"`
}

// Vect returns the momentum three-vector.
func (p FourVec) Vect() Vec3 {
	return Vec3{p.Px, p.Py, p.Pz}
}

// P returns the momentum magnitude.
func (p FourVec) P() float64 {
	return math.Sqrt(p.Px*p.Px + p.Py*p.Py + p.Pz*p.Pz)
}

// Pt returns the transverse momentum.
func (p FourVec) Pt() float64 {
	return math.Sqrt(p.Px*p.Px + p.Py*p.Py)
}

// Phi returns the azimuthal angle in (-pi, pi].
func (p FourVec) Phi() float64 {
	return math.Atan2(p.Py, p.Px)
}

// Eta returns the pseudorapidity. Diverges for momenta along the beam axis.
func (p FourVec) Eta() float64 {
	return math.Atanh(p.Pz / p.P())
}

// DeltaPhi returns a-b wrapped into (-pi, pi].
func DeltaPhi(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
