package revenue

import (
	"math/rand"
	"time"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
// Implementations are used from a single goroutine.
type RandomSource interface {
	Float64() float64
}

func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

func NewClockSource() RandomSource {
	return NewSeededSource(time.Now().UnixNano())
}

// ConstantSource always returns the same draw.
type ConstantSource float64

func (c ConstantSource) Float64() float64 {
	return float64(c)
}

func uniform(src RandomSource, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
