// Package synchrotron computes the synchrotron spectrum radiated by a
// power-law population of relativistic electrons.
//
// The computation is a chain of small, pure components:
//
//	Kernel    F(x) = x ∫ₓ^∞ K_{5/3}(y) dy
//	Emitter   P(w, γ) = A · F(w / (D γ²))
//	PowerLaw  N(γ) = γ^(-p) for γ >= γ_min, 0 below
//	Spectrum  Ptot(w) = ∫_{γ1}^{γ2} P(w, γ) N(γ) dγ
//
// All constants are dimensionless and default to 1, so spectra are only
// meaningful up to an overall scale. The upper limit of the kernel integral
// is truncated at a finite cutoff where K_{5/3} is negligible.
//
// Kernels, emitters and spectra hold no mutable state and are safe for
// concurrent use.
package synchrotron
