// Command fracdelay applies fractional delays to WAV files and prints the
// frequency response of the delay filters.
//
// Usage:
//
//	fracdelay apply --delay 3.3 input.wav output.wav
//	fracdelay apply --delay 10.7 --kernel sinc --half-width 16 --window hann in.wav out.wav
//	fracdelay response --delay 3.3 --kernel linear --points 16
//	fracdelay version
//
// Every flag can also be set through a FRACDELAY_ environment variable
// (FRACDELAY_HALF_WIDTH=16) or a config file passed with --config.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
