// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src until EOF and returns every sample as interleaved
// float32 values. bufSize controls the read chunk size; 4096 is a good
// default. maxSamples bounds how many samples may be collected in total;
// pass 0 for no bound. Exceeding the bound fails with ErrTooManySamples
// rather than growing without limit.
func Collect(src Source, bufSize int, maxSamples int64) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}

	var samples []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if maxSamples > 0 && int64(len(samples))+int64(n) > maxSamples {
				return nil, fmt.Errorf("collected over %d samples: %w", maxSamples, ErrTooManySamples)
			}
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}
