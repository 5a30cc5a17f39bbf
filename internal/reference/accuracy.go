package reference

import "github.com/cwbudde/algo-vecmath"

// BlockError compares one decoded 8x8 block with the exact transform.
type BlockError struct {
	Peak  float64 // largest absolute per-sample error
	SumSq float64 // sum of squared errors over the 64 samples
}

// Compare measures the error of the samples at out[r][outCol:outCol+8]
// against exact, which is clamped into the sample range first.
func Compare(out [][]byte, outCol int, exact *[64]float64) BlockError {
	var got, want, neg, diff [64]float64
	for r := range blockSize {
		for c := range blockSize {
			got[r*blockSize+c] = float64(out[r][outCol+c])
			want[r*blockSize+c] = min(max(exact[r*blockSize+c], 0), maxSample)
		}
	}

	vecmath.ScaleBlock(neg[:], want[:], -1)
	vecmath.AddBlock(diff[:], got[:], neg[:])

	return BlockError{
		Peak:  vecmath.MaxAbs(diff[:]),
		SumSq: vecmath.DotProduct(diff[:], diff[:]),
	}
}

// Stats accumulates BlockError values over many blocks.
type Stats struct {
	Blocks int
	Peak   float64
	SumSq  float64
}

// Add folds one block into s.
func (s *Stats) Add(e BlockError) {
	s.Blocks++
	s.Peak = max(s.Peak, e.Peak)
	s.SumSq += e.SumSq
}

// MSE returns the mean squared error per sample.
func (s *Stats) MSE() float64 {
	if s.Blocks == 0 {
		return 0
	}
	return s.SumSq / float64(s.Blocks*blockSize*blockSize)
}
