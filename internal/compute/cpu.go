package compute

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
)

// serialThreshold is the column length below which elementwise ops stay on
// one goroutine; fan-out overhead dominates for short columns.
const serialThreshold = 4096

type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{
		workers: runtime.NumCPU(),
	}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}

// Uniform draws sequentially from rng; draws are never parallelized so a
// fixed seed always yields the same column.
func (c *CPUBackend) Uniform(rng *rand.Rand, n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	span := hi - lo
	for i := range out {
		out[i] = lo + span*rng.Float64()
	}
	return out
}

func (c *CPUBackend) UniformInt(rng *rand.Rand, n int, lo, hi int) []int {
	out := make([]int, n)
	span := hi - lo + 1
	for i := range out {
		out[i] = lo + rng.Intn(span)
	}
	return out
}

func (c *CPUBackend) Add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	c.each(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = a[i] + b[i]
		}
	})
	return out
}

func (c *CPUBackend) Sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	c.each(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = a[i] - b[i]
		}
	})
	return out
}

func (c *CPUBackend) Mul(a, b []float64) []float64 {
	out := make([]float64, len(a))
	c.each(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = a[i] * b[i]
		}
	})
	return out
}

func (c *CPUBackend) Scale(a []float64, s float64) []float64 {
	out := make([]float64, len(a))
	c.each(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = a[i] * s
		}
	})
	return out
}

func (c *CPUBackend) AddScaled(a, b []float64, s float64) []float64 {
	out := make([]float64, len(a))
	c.each(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = a[i] + s*b[i]
		}
	})
	return out
}

func (c *CPUBackend) SumN(vs ...[]float64) []float64 {
	if len(vs) == 0 {
		return nil
	}
	n := len(vs[0])
	out := make([]float64, n)
	c.each(n, func(start, end int) {
		for _, v := range vs {
			for i := start; i < end; i++ {
				out[i] += v[i]
			}
		}
	})
	return out
}

func (c *CPUBackend) Round2(a []float64) []float64 {
	out := make([]float64, len(a))
	c.each(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = math.RoundToEven(a[i]*100) / 100
		}
	})
	return out
}

// each runs fn over [0,n) either serially or chunked across workers.
func (c *CPUBackend) each(n int, fn func(start, end int)) {
	if n < serialThreshold || c.workers < 2 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + c.workers - 1) / c.workers

	for w := 0; w < c.workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if start >= n {
			break
		}
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}

	wg.Wait()
}
