package compute

import "math/rand"

// Backend is one numeric execution path for register generation and
// derivation. Random draws consume the caller's rng so that two runs with
// the same seed produce identical tables on the reference backend; the
// accelerated backend derives its own device stream from the rng instead.
type Backend interface {
	Name() string
	Available() bool

	// Uniform draws n floats from [lo, hi).
	Uniform(rng *rand.Rand, n int, lo, hi float64) []float64
	// UniformInt draws n integers from [lo, hi], both ends inclusive.
	UniformInt(rng *rand.Rand, n int, lo, hi int) []int

	Add(a, b []float64) []float64
	Sub(a, b []float64) []float64
	Mul(a, b []float64) []float64
	Scale(a []float64, s float64) []float64
	// AddScaled computes a + s*b elementwise.
	AddScaled(a, b []float64, s float64) []float64
	// SumN adds any number of equal-length vectors elementwise.
	SumN(vs ...[]float64) []float64
	// Round2 rounds every element half-to-even at two decimal places.
	Round2(a []float64) []float64

	Cleanup()
}

var activeBackend Backend

func init() {
	activeBackend = AutoSelectBackend()
}

func SetBackend(b Backend) {
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}

func AutoSelectBackend() Backend {
	cuda := NewCUDABackend()
	if cuda.Available() {
		return cuda
	}
	return NewCPUBackend()
}

// ForDevice maps a CLI device name to a backend. "gpu" and "cuda" both
// select the accelerated path, which may report Available() == false.
func ForDevice(device string) (Backend, bool) {
	switch device {
	case "cpu":
		return NewCPUBackend(), true
	case "gpu", "cuda":
		return NewCUDABackend(), true
	default:
		return nil, false
	}
}

// Floats converts an integer column to float64 for elementwise arithmetic.
func Floats(a []int) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = float64(v)
	}
	return out
}
