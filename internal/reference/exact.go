package reference

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrPlan is returned when the FFT plan backing ExactIDCT cannot be built.
var ErrPlan = errors.New("reference: fft plan unavailable")

const (
	blockSize = 8
	fftSize   = 4 * blockSize
)

// ExactIDCT evaluates the 8x8 inverse DCT in float64.
//
// Each 1-D transform x[n] = 1/2 sum_k c(k) X[k] cos((2n+1)k pi/16) is the
// real part of the odd bins of a length-32 DFT of c(k) X[k], zero padded:
// x[n] = Re F[2n+1] / 2. The sign convention of the FFT does not matter
// since only real parts are used.
//
// An ExactIDCT is not safe for concurrent use.
type ExactIDCT struct {
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

// NewExactIDCT creates an exact transform with its FFT plan.
func NewExactIDCT() (*ExactIDCT, error) {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlan, err)
	}

	return &ExactIDCT{
		plan: plan,
		in:   make([]complex128, fftSize),
		out:  make([]complex128, fftSize),
	}, nil
}

// Transform writes the inverse DCT of the dequantized coefficients in src
// to dst, both 8x8 in natural order. dst holds level-shifted, unclamped
// sample values.
func (e *ExactIDCT) Transform(dst, src *[64]float64) error {
	var tmp [64]float64

	// Columns.
	for col := range blockSize {
		var x [blockSize]float64
		for row := range blockSize {
			x[row] = src[row*blockSize+col]
		}
		if err := e.transform1D(&x); err != nil {
			return err
		}
		for row := range blockSize {
			tmp[row*blockSize+col] = x[row]
		}
	}

	// Rows.
	for row := range blockSize {
		x := [blockSize]float64(tmp[row*blockSize : row*blockSize+blockSize])
		if err := e.transform1D(&x); err != nil {
			return err
		}
		for col := range blockSize {
			dst[row*blockSize+col] = x[col] + centerSample
		}
	}

	return nil
}

func (e *ExactIDCT) transform1D(x *[blockSize]float64) error {
	clear(e.in)
	e.in[0] = complex(x[0]*math.Sqrt2/2, 0)
	for k := 1; k < blockSize; k++ {
		e.in[k] = complex(x[k], 0)
	}

	if err := e.plan.Forward(e.out, e.in); err != nil {
		return fmt.Errorf("reference: forward fft: %w", err)
	}

	for n := range blockSize {
		x[n] = real(e.out[2*n+1]) / 2
	}
	return nil
}

// Dequantize multiplies coef by quant elementwise into dst.
func Dequantize[C, Q ~int16](dst *[64]float64, coef []C, quant []Q) {
	var a, b [64]float64
	for i := range a {
		a[i] = float64(coef[i])
		b[i] = float64(quant[i])
	}
	vecmath.MulBlock(dst[:], a[:], b[:])
}
