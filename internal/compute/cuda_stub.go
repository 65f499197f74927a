//go:build !cuda

package compute

import "math/rand"

type CUDABackend struct {
	host *CPUBackend
}

func NewCUDABackend() *CUDABackend {
	return &CUDABackend{host: NewCPUBackend()}
}

func (c *CUDABackend) Name() string    { return "cuda (not available)" }
func (c *CUDABackend) Available() bool { return false }
func (c *CUDABackend) Cleanup()        {}

func (c *CUDABackend) Uniform(rng *rand.Rand, n int, lo, hi float64) []float64 {
	return c.host.Uniform(rng, n, lo, hi)
}

func (c *CUDABackend) UniformInt(rng *rand.Rand, n int, lo, hi int) []int {
	return c.host.UniformInt(rng, n, lo, hi)
}

func (c *CUDABackend) Add(a, b []float64) []float64 { return c.host.Add(a, b) }
func (c *CUDABackend) Sub(a, b []float64) []float64 { return c.host.Sub(a, b) }
func (c *CUDABackend) Mul(a, b []float64) []float64 { return c.host.Mul(a, b) }

func (c *CUDABackend) Scale(a []float64, s float64) []float64 {
	return c.host.Scale(a, s)
}

func (c *CUDABackend) AddScaled(a, b []float64, s float64) []float64 {
	return c.host.AddScaled(a, b, s)
}

func (c *CUDABackend) SumN(vs ...[]float64) []float64 { return c.host.SumN(vs...) }
func (c *CUDABackend) Round2(a []float64) []float64   { return c.host.Round2(a) }
