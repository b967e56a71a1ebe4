// Package special provides special functions that the standard math package
// lacks, with the same argument conventions as math.
package special

import "math"

const (
	besselEps     = 1e-16
	besselMaxIter = 10000
	// Below this argument the Temme series is used, above it the
	// Steed continued fraction.
	besselXMin = 2.0
	eulerGamma = 0.5772156649015328606065120900824024
)

// BesselK returns the modified Bessel function of the second kind K_ν(x)
// for real order nu.
//
// The order is reduced to μ = ν - n with |μ| <= 1/2. K_μ and K_{μ+1} are
// obtained from Temme's series for x < 2 and from the Thompson–Barnett
// continued fraction for x >= 2, then raised to order ν by the stable
// upward recurrence K_{μ+1} = (2μ/x) K_μ + K_{μ-1}.
//
// Special cases are:
//
//	BesselK(ν, 0) = +Inf
//	BesselK(ν, +Inf) = 0
//	BesselK(ν, x < 0) = NaN
//	BesselK(ν, NaN) = NaN
//	BesselK(-ν, x) = BesselK(ν, x)
func BesselK(nu, x float64) float64 {
	switch {
	case math.IsNaN(nu) || math.IsNaN(x) || x < 0 || math.IsInf(nu, 0):
		return math.NaN()
	case x == 0:
		return math.Inf(1)
	case math.IsInf(x, 1):
		return 0
	}

	nu = math.Abs(nu)
	nl := int(nu + 0.5)
	mu := nu - float64(nl)

	var kmu, kmu1 float64
	if x < besselXMin {
		kmu, kmu1 = temmeSeries(mu, x)
	} else {
		kmu, kmu1 = steedFraction(mu, x)
	}

	xi2 := 2 / x
	for i := 1; i <= nl; i++ {
		next := (mu+float64(i))*xi2*kmu1 + kmu
		kmu = kmu1
		kmu1 = next
	}
	return kmu
}

// temmeSeries returns K_μ(x) and K_{μ+1}(x) for |μ| <= 1/2 and small x.
func temmeSeries(mu, x float64) (float64, float64) {
	mu2 := mu * mu
	x2 := 0.5 * x

	pimu := math.Pi * mu
	fact := 1.0
	if math.Abs(pimu) >= besselEps {
		fact = pimu / math.Sin(pimu)
	}

	d := -math.Log(x2)
	e := mu * d
	fact2 := 1.0
	if math.Abs(e) >= besselEps {
		fact2 = math.Sinh(e) / e
	}

	gam1, gam2, gampl, gammi := temmeGammas(mu)

	ff := fact * (gam1*math.Cosh(e) + gam2*fact2*d)
	sum := ff
	e = math.Exp(e)
	p := 0.5 * e / gampl
	q := 0.5 / (e * gammi)
	c := 1.0
	d = x2 * x2
	sum1 := p

	for i := 1; i <= besselMaxIter; i++ {
		fi := float64(i)
		ff = (fi*ff + p + q) / (fi*fi - mu2)
		c *= d / fi
		p /= fi - mu
		q /= fi + mu
		del := c * ff
		sum += del
		sum1 += c * (p - fi*ff)
		if math.Abs(del) < math.Abs(sum)*besselEps {
			break
		}
	}

	return sum, sum1 * 2 / x
}

// steedFraction returns K_μ(x) and K_{μ+1}(x) for |μ| <= 1/2 and x >= 2.
func steedFraction(mu, x float64) (float64, float64) {
	mu2 := mu * mu

	b := 2 * (1 + x)
	d := 1 / b
	h := d
	delh := d
	q1, q2 := 0.0, 1.0
	a1 := 0.25 - mu2
	q := a1
	c := a1
	a := -a1
	s := 1 + q*delh

	for i := 2; i <= besselMaxIter; i++ {
		fi := float64(i)
		a -= 2 * (fi - 1)
		c = -a * c / fi
		qnew := (q1 - b*q2) / a
		q1 = q2
		q2 = qnew
		q += c * qnew
		b += 2
		d = 1 / (b + a*d)
		delh = (b*d - 1) * delh
		h += delh
		dels := q * delh
		s += dels
		if math.Abs(dels/s) < besselEps {
			break
		}
	}

	h *= a1
	kmu := math.Sqrt(math.Pi/(2*x)) * math.Exp(-x) / s
	kmu1 := kmu * (mu + x + 0.5 - h) / x
	return kmu, kmu1
}

// temmeGammas returns
//
//	gam1 = (1/Γ(1-μ) - 1/Γ(1+μ)) / (2μ)
//	gam2 = (1/Γ(1-μ) + 1/Γ(1+μ)) / 2
//
// together with 1/Γ(1+μ) and 1/Γ(1-μ). gam1 uses its Taylor expansion
// near μ = 0 where the difference quotient cancels.
func temmeGammas(mu float64) (gam1, gam2, gampl, gammi float64) {
	gampl = 1 / math.Gamma(1+mu)
	gammi = 1 / math.Gamma(1-mu)
	gam2 = 0.5 * (gammi + gampl)
	if math.Abs(mu) < 1e-4 {
		// 1/Γ(1+z) = 1 + γz - 0.6558780715z² - 0.0420026350z³ + ...
		gam1 = -eulerGamma + 0.0420026350340952*mu*mu
		return gam1, gam2, gampl, gammi
	}
	gam1 = (gammi - gampl) / (2 * mu)
	return gam1, gam2, gampl, gammi
}
