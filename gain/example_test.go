// SPDX-License-Identifier: EPL-2.0

package gain_test

import (
	"fmt"

	"github.com/ik5/sndprint/gain"
	"github.com/ik5/sndprint/wave"
)

// Example demonstrates normalizing a quiet recording to the default
// target peak.
func Example() {
	format, _ := wave.NewFormat(8000, 16, 1)
	quiet, _ := wave.New(format, []float32{0.1, -0.25, 0.2, -0.05})

	out, _ := gain.Normalize(quiet, gain.DefaultTarget)

	fmt.Printf("peak before: %.2f\n", quiet.Peak())
	fmt.Printf("peak after:  %.2f\n", out.Peak())
	// Output:
	// peak before: 0.25
	// peak after:  0.95
}

// Example_silence shows that silence passes through untouched.
func Example_silence() {
	format, _ := wave.NewFormat(8000, 16, 1)
	silence, _ := wave.New(format, make([]float32, 8000))

	out, _ := gain.Normalize(silence, gain.DefaultTarget)

	fmt.Printf("unchanged: %v\n", out == silence)
	fmt.Printf("peak: %v\n", out.Peak())
	// Output:
	// unchanged: true
	// peak: 0
}
