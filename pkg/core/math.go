package core

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the scalar type a Vec3 can be built on.
type Float interface {
	~float32 | ~float64
}

// Inf returns positive infinity in the scalar type T.
func Inf[T Float]() T {
	return T(math.Inf(1))
}

// Sqrt returns the square root of x. float32 values stay in single
// precision; every other scalar goes through float64.
func Sqrt[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}
