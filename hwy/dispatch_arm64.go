//go:build arm64

package hwy

import (
	"os"

	"golang.org/x/sys/cpu"
)

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ASIMD is part of the ARMv8-A base architecture. SVE vector length is
	// implementation defined, so lanes stay at the 128-bit NEON width.
	switch {
	case cpu.ARM64.HasSVE && os.Getenv("HWY_NO_SVE") == "":
		currentLevel = DispatchSVE
		currentWidth = 16
	case cpu.ARM64.HasASIMD:
		currentLevel = DispatchNEON
		currentWidth = 16
	default:
		setScalarMode()
	}
}
