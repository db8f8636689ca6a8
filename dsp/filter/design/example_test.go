package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

func ExamplePeak() {
	c := design.Peak(1000, 6, 1, 48000)
	fmt.Printf("%.2f dB\n", c.MagnitudeDB(1000, 48000))
	// Output:
	// 6.00 dB
}

func ExampleHighpassCascade() {
	sections := design.HighpassCascade(design.CutStacked, 80, 3, 48000)
	fmt.Println(len(sections), sections[0] == sections[2])
	// Output:
	// 3 true
}
