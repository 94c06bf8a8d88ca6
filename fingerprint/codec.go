// Package fingerprint — msgpack wire codec.
package fingerprint

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/metriclab/gromov/metric"
)

// Encode serializes the fingerprint to its msgpack wire form.
func (f *Fingerprint) Encode() ([]byte, error) {
	if f == nil {
		return nil, ErrCorruptPayload
	}

	return msgpack.Marshal(f)
}

// Decode parses a msgpack payload produced by Encode and re-validates
// every structural invariant: positive resolution, square cell matrix,
// zero diagonal, symmetry, cells within [0, Cap]. Anything malformed
// returns ErrCorruptPayload with context.
func Decode(payload []byte) (*Fingerprint, error) {
	var f Fingerprint
	if err := msgpack.Unmarshal(payload, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}

	if f.Eps <= 0 || math.IsNaN(f.Eps) || math.IsInf(f.Eps, 0) {
		return nil, fmt.Errorf("%w: non-positive resolution", ErrCorruptPayload)
	}
	if f.N <= 0 || f.Cap <= 0 {
		return nil, fmt.Errorf("%w: non-positive size or cap", ErrCorruptPayload)
	}
	if f.Diam < 0 || math.IsNaN(f.Diam) || math.IsInf(f.Diam, 0) {
		return nil, fmt.Errorf("%w: invalid diameter bound", ErrCorruptPayload)
	}
	if f.Diam > float64(f.Cap)*f.Eps+metric.StructTol {
		return nil, fmt.Errorf("%w: cap %d below diameter %g at resolution %g", ErrCorruptPayload, f.Cap, f.Diam, f.Eps)
	}
	if len(f.Cells) != f.N*f.N {
		return nil, fmt.Errorf("%w: cell count %d for net size %d", ErrCorruptPayload, len(f.Cells), f.N)
	}

	var i, j int
	for i = 0; i < f.N; i++ {
		if f.Cells[i*f.N+i] != 0 {
			return nil, fmt.Errorf("%w: nonzero diagonal cell", ErrCorruptPayload)
		}
		for j = 0; j < f.N; j++ {
			c := f.Cells[i*f.N+j]
			if c < 0 || int(c) > f.Cap {
				return nil, fmt.Errorf("%w: cell %d out of [0, %d]", ErrCorruptPayload, c, f.Cap)
			}
			if c != f.Cells[j*f.N+i] {
				return nil, fmt.Errorf("%w: asymmetric cells", ErrCorruptPayload)
			}
		}
	}

	return &f, nil
}
