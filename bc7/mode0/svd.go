package mode0

import "math"

// seedEndpoints computes the principal-component rough seed for one
// region's samples. Returns both endpoints as float RGB triples
// clamped to [0,255].
func seedEndpoints(samples []sample) (a, b [3]float64) {
	n := len(samples)
	switch n {
	case 0:
		return [3]float64{0, 0, 0}, [3]float64{0, 0, 0}
	case 1:
		p := rgbOf(samples[0])
		return p, p
	case 2:
		return rgbOf(samples[0]), rgbOf(samples[1])
	}

	mean := meanRGB(samples)

	// Build the centered covariance matrix in single precision, per
	// this package's eigenvector solver runs in single precision throughout.
	var cov [3][3]float32
	for _, s := range samples {
		p := rgbOf(s)
		d := [3]float32{
			float32(p[0] - mean[0]),
			float32(p[1] - mean[1]),
			float32(p[2] - mean[2]),
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				cov[i][j] += d[i] * d[j]
			}
		}
	}

	dir, degenerate := principalDirection(cov)
	if degenerate {
		// Zero-variance region (numeric degeneracy in the eigensolver):
		// fall back to both endpoints equal to the mean.
		return mean, mean
	}

	var projMin, projMax float64
	first := true
	for _, s := range samples {
		p := rgbOf(s)
		proj := (p[0]-mean[0])*float64(dir[0]) +
			(p[1]-mean[1])*float64(dir[1]) +
			(p[2]-mean[2])*float64(dir[2])
		if first || proj < projMin {
			projMin = proj
		}
		if first || proj > projMax {
			projMax = proj
		}
		first = false
	}

	a = [3]float64{
		clampByte(mean[0] + projMin*float64(dir[0])),
		clampByte(mean[1] + projMin*float64(dir[1])),
		clampByte(mean[2] + projMin*float64(dir[2])),
	}
	b = [3]float64{
		clampByte(mean[0] + projMax*float64(dir[0])),
		clampByte(mean[1] + projMax*float64(dir[1])),
		clampByte(mean[2] + projMax*float64(dir[2])),
	}
	return a, b
}

func rgbOf(s sample) [3]float64 {
	return [3]float64{s.rgba[0], s.rgba[1], s.rgba[2]}
}

func meanRGB(samples []sample) [3]float64 {
	var sum [3]float64
	for _, s := range samples {
		p := rgbOf(s)
		sum[0] += p[0]
		sum[1] += p[1]
		sum[2] += p[2]
	}
	n := float64(len(samples))
	return [3]float64{sum[0] / n, sum[1] / n, sum[2] / n}
}

// principalDirection returns the unit eigenvector of the largest
// eigenvalue of the symmetric 3x3 covariance matrix cov, via cyclic
// Jacobi rotation (no general-purpose linear-algebra library is used
// anywhere in the reference corpus this module is grounded on; see
// DESIGN.md). degenerate is true when every eigenvalue is
// (numerically) zero, i.e. the region has no color variance.
func principalDirection(cov [3][3]float32) (dir [3]float32, degenerate bool) {
	a := cov
	v := [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	const maxSweeps = 30
	for sweep := 0; sweep < maxSweeps; sweep++ {
		off := absf32(a[0][1]) + absf32(a[0][2]) + absf32(a[1][2])
		if off < 1e-12 {
			break
		}
		for p := 0; p < 2; p++ {
			for q := p + 1; q < 3; q++ {
				if absf32(a[p][q]) < 1e-20 {
					continue
				}
				jacobiRotate(&a, &v, p, q)
			}
		}
	}

	eig := [3]float32{a[0][0], a[1][1], a[2][2]}
	maxAbs := absf32(eig[0])
	if m := absf32(eig[1]); m > maxAbs {
		maxAbs = m
	}
	if m := absf32(eig[2]); m > maxAbs {
		maxAbs = m
	}
	if maxAbs < 1e-9 {
		return [3]float32{1, 0, 0}, true
	}

	best := 0
	for i := 1; i < 3; i++ {
		if absf32(eig[i]) > absf32(eig[best]) {
			best = i
		}
	}
	dir = [3]float32{v[0][best], v[1][best], v[2][best]}
	norm := float32(math.Sqrt(float64(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2])))
	if norm < 1e-12 {
		return [3]float32{1, 0, 0}, true
	}
	return [3]float32{dir[0] / norm, dir[1] / norm, dir[2] / norm}, false
}

// jacobiRotate eliminates a[p][q] by rotating the (p,q) plane, updating
// both the matrix a and the accumulated eigenvector matrix v in place.
func jacobiRotate(a *[3][3]float32, v *[3][3]float32, p, q int) {
	app, aqq, apq := a[p][p], a[q][q], a[p][q]
	if absf32(apq) < 1e-20 {
		return
	}
	theta := (aqq - app) / (2 * apq)
	var t float32
	if theta >= 0 {
		t = 1 / (theta + float32(math.Sqrt(float64(1+theta*theta))))
	} else {
		t = -1 / (-theta + float32(math.Sqrt(float64(1+theta*theta))))
	}
	c := 1 / float32(math.Sqrt(float64(1+t*t)))
	s := t * c

	for k := 0; k < 3; k++ {
		akp, akq := a[k][p], a[k][q]
		a[k][p] = c*akp - s*akq
		a[k][q] = s*akp + c*akq
	}
	for k := 0; k < 3; k++ {
		apk, aqk := a[p][k], a[q][k]
		a[p][k] = c*apk - s*aqk
		a[q][k] = s*apk + c*aqk
	}
	for k := 0; k < 3; k++ {
		vkp, vkq := v[k][p], v[k][q]
		v[k][p] = c*vkp - s*vkq
		v[k][q] = s*vkp + c*vkq
	}
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
