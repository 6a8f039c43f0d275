// SPDX-License-Identifier: EPL-2.0

package colorfreq_test

import (
	"fmt"

	"github.com/ik5/colorfreq"
	"github.com/ik5/colorfreq/audio"
	"github.com/ik5/colorfreq/wavelength"
)

// Example_color maps concert A with every method.
func Example_color() {
	for _, m := range wavelength.Methods() {
		fmt.Printf("%-6s %s\n", m, colorfreq.Color(440, m).Hex())
	}
	// Output:
	// simple #770000
	// octave #36ff00
	// 440hz  #610061
}

// Example_sourceColors reads a generated tone frame by frame.
func Example_sourceColors() {
	src := audio.NewTone(44100, 1, 4096, 440, 0.5)

	readings, err := colorfreq.SourceColors(src, 44100, 1024, wavelength.FourForty)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, r := range readings {
		fmt.Printf("%.2f Hz %.0f nm %s\n", r.Frequency, r.Wavelength, r.Color.Hex())
	}
	// Output:
	// 430.66 Hz 380 nm #610061
	// 430.66 Hz 380 nm #610061
	// 430.66 Hz 380 nm #610061
	// 430.66 Hz 380 nm #610061
}
