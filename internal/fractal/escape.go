package fractal

// escapeRadiusSq is |z|² beyond which an orbit is known to diverge.
const escapeRadiusSq = 4.0

// EscapeTime iterates z = z*z + c from z = 0 for at most limit steps.
//
// It returns (i, true) when |z|² exceeds 4 at the start of iteration i, i.e.
// after i completed steps. The test runs before each squaring, so a point
// escaping on the final step of the limit is still reported as bounded.
// When the orbit stays bounded it returns (0, false).
func EscapeTime(c complex128, limit int) (int, bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > escapeRadiusSq {
			return i, true
		}
		z = z*z + c
	}
	return 0, false
}
