package matrices

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/eigshow/internal/vec"
)

// Sigma is the standard deviation of the random matrix entries.
const Sigma = 0.75

// Sampler draws random matrices with entries i.i.d. N(0, Sigma^2). Every
// Draw is an independent sample; reselecting the random choice never
// returns a cached matrix.
type Sampler struct {
	dist distuv.Normal
}

func NewSampler(seed uint64) *Sampler {
	return &Sampler{dist: distuv.Normal{
		Mu:    0,
		Sigma: Sigma,
		Src:   rand.NewSource(seed),
	}}
}

func (s *Sampler) Draw() vec.Mat2 {
	return vec.Mat2{
		A11: s.dist.Rand(), A12: s.dist.Rand(),
		A21: s.dist.Rand(), A22: s.dist.Rand(),
	}
}
