// SPDX-License-Identifier: EPL-2.0

package wave

// Peak returns the maximum absolute sample magnitude across all samples
// and all channels, scanning every sample exactly once. An empty waveform
// has no peak and yields 0.
func (w *Waveform) Peak() float64 {
	var peak float32

	for _, s := range w.Samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}

	return float64(peak)
}
