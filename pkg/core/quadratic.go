package core

// SolveQuadratic solves a·t² + b·t + c = 0 for real t.
//
// When the discriminant is negative both results are +Inf, so a caller
// comparing them against a finite upper bound always rejects them. Otherwise
// t1 = (-b + √Δ) / 2a and t2 = (-b - √Δ) / 2a; a tangent (Δ = 0) gives two
// equal roots. a = 0 is not special-cased and produces Inf/NaN.
func SolveQuadratic[T Float](a, b, c T) (t1, t2 T) {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		inf := Inf[T]()
		return inf, inf
	}

	sqrtD := Sqrt(discriminant)
	t1 = (-b + sqrtD) / (2 * a)
	t2 = (-b - sqrtD) / (2 * a)
	return t1, t2
}
