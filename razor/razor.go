// Package razor computes the razor kinematic variables M_R and R from a
// two-hemisphere decomposition of an event and its missing transverse
// energy. The razor variables discriminate pair-produced heavy particles
// with invisible decay products from QCD multijet background.
package razor

import "math"

// Variables holds the per-event razor kinematics. They are derived
// quantities, recomputed for every event and never persisted.
type Variables struct {
	MR    float64 // razor mass scale, GeV
	R     float64 // razor ratio MTR/MR
	Rsq   float64 // R*R
	DPhiR float64 // |delta phi| between the two hemisphere axes, in [0, pi]
}

// CalcMR computes the longitudinally-boost-invariant razor mass from the
// two hemisphere four-vectors, with ja the leading (higher-pT) hemisphere.
// Returns -1 if the leading hemisphere has no meaningful transverse
// momentum (pT <= 0.1 GeV). Collinear opposite transverse configurations
// with equal magnitude make the transverse-sum denominator vanish; that
// singularity is left to IEEE arithmetic on purpose.
func CalcMR(ja, jb FourVec) float64 {
	if ja.Pt() <= 0.1 {
		return -1
	}

	a := ja.P()
	b := jb.P()
	az := ja.Pz
	bz := jb.Pz
	jaT := Vec3{ja.Px, ja.Py, 0}
	jbT := Vec3{jb.Px, jb.Py, 0}
	atbt := jaT.Add(jbT).Mag2()

	mr := math.Sqrt((a+b)*(a+b) - (az+bz)*(az+bz) -
		(jbT.Dot(jbT)-jaT.Dot(jaT))*(jbT.Dot(jbT)-jaT.Dot(jaT))/atbt)
	beta := (jbT.Dot(jbT) - jaT.Dot(jaT)) /
		math.Sqrt(atbt*((a+b)*(a+b)-(az+bz)*(az+bz)))
	gamma := 1. / math.Sqrt(1.-beta*beta)

	// gamma times MR-star
	return mr * gamma
}

// CalcR computes R = MTR/MR from the hemisphere pair and the missing
// transverse energy vector. MR == 0 yields Inf or NaN per IEEE-754; the
// result is not guarded. The intermediate single-precision truncation of
// the original HLT filter code is kept so that cut decisions agree bit
// for bit.
func CalcR(mr float64, ja, jb FourVec, met Vec3) float64 {
	mtr := math.Sqrt(0.5 * (met.R()*(ja.Pt()+jb.Pt()) - met.Dot(ja.Vect().Add(jb.Vect()))))
	return float64(float32(mtr)) / float64(float32(mr))
}

// Compute evaluates the razor variables for the first two hemispheres,
// pT-ordering them so that the leading one seeds the MR calculation.
// dPhiR is taken from the hemispheres in storage order. The caller must
// guarantee len(hemis) >= 2.
func Compute(hemis []FourVec, met Vec3) Variables {
	var mr, r float64
	if hemis[1].Pt() > hemis[0].Pt() {
		mr = CalcMR(hemis[1], hemis[0])
		r = CalcR(mr, hemis[1], hemis[0], met)
	} else {
		mr = CalcMR(hemis[0], hemis[1])
		r = CalcR(mr, hemis[0], hemis[1], met)
	}

	return Variables{
		MR:    mr,
		R:     r,
		Rsq:   r * r,
		DPhiR: math.Abs(DeltaPhi(hemis[0].Phi(), hemis[1].Phi())),
	}
}
