package ports

import "math/rand/v2"

// Random yields uniform samples in [0, 1).
type Random interface {
	Float64() float64
}

type SystemRandom struct{}

func (SystemRandom) Float64() float64 {
	return rand.Float64()
}
