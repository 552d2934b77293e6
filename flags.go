package main

import "flag"

// Command-line flags that control optional rendering, simulation, and runtime
// behavior.
var (
	// configFlag points at an optional TOML configuration file.
	configFlag = flag.String("config", "", "path to a TOML configuration file")

	// paletteFlag switches rendering from grayscale to an HSV color ramp.
	paletteFlag = flag.Bool("palette", false, "render pressure with an HSV palette instead of grayscale")

	// debugFlag enables the FPS and simulation overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation overlay")

	// recordFlag captures the oscillator output into a WAV file.
	recordFlag = flag.String("record", "", "write oscillator output to this WAV file")

	// cpuProfileFlag enables CPU profiling for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")

	// headlessStepsFlag runs the simulation without a window and exits.
	headlessStepsFlag = flag.Int("headless-steps", 0, "run this many simulation steps without a window, log the result, and exit")
)
