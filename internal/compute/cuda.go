//go:build cuda

package compute

/*
#cgo CFLAGS: -I/opt/cuda/include
#cgo LDFLAGS: -L/opt/cuda/lib64 -L${SRCDIR} -lcudart -lkernels -lstdc++
#include <stdlib.h>

extern int cuda_device_count();
extern const char* cuda_device_name_get();
extern void uniform_gpu(float* out, int n, float lo, float hi, unsigned long long seed);
extern void mul_gpu(float* a, float* b, float* out, int n);
extern void scale_gpu(float* a, float s, float* out, int n);
*/
import "C"
import (
	"math/rand"
	"unsafe"
)

type CUDABackend struct {
	available  bool
	deviceName string
	host       *CPUBackend
}

func NewCUDABackend() *CUDABackend {
	count := int(C.cuda_device_count())
	name := ""
	if count > 0 {
		name = C.GoString(C.cuda_device_name_get())
	}
	return &CUDABackend{
		available:  count > 0,
		deviceName: name,
		host:       NewCPUBackend(),
	}
}

func (c *CUDABackend) Name() string {
	if c.available {
		return "cuda (" + c.deviceName + ")"
	}
	return "cuda (not available)"
}

func (c *CUDABackend) Available() bool { return c.available }
func (c *CUDABackend) Cleanup()        {}

func (c *CUDABackend) Uniform(rng *rand.Rand, n int, lo, hi float64) []float64 {
	if !c.available || n == 0 {
		return c.host.Uniform(rng, n, lo, hi)
	}

	outF := make([]float32, n)
	C.uniform_gpu(
		(*C.float)(unsafe.Pointer(&outF[0])),
		C.int(n),
		C.float(lo),
		C.float(hi),
		C.ulonglong(rng.Uint64()),
	)

	out := make([]float64, n)
	for i, v := range outF {
		out[i] = float64(v)
	}
	return out
}

func (c *CUDABackend) UniformInt(rng *rand.Rand, n int, lo, hi int) []int {
	draws := c.Uniform(rng, n, float64(lo), float64(hi+1))
	out := make([]int, n)
	for i, v := range draws {
		iv := int(v)
		if iv > hi {
			iv = hi
		}
		out[i] = iv
	}
	return out
}

func (c *CUDABackend) Mul(a, b []float64) []float64 {
	if !c.available || len(a) == 0 {
		return c.host.Mul(a, b)
	}

	aF := toFloat32(a)
	bF := toFloat32(b)
	outF := make([]float32, len(a))

	C.mul_gpu(
		(*C.float)(unsafe.Pointer(&aF[0])),
		(*C.float)(unsafe.Pointer(&bF[0])),
		(*C.float)(unsafe.Pointer(&outF[0])),
		C.int(len(a)),
	)

	return toFloat64(outF)
}

func (c *CUDABackend) Scale(a []float64, s float64) []float64 {
	if !c.available || len(a) == 0 {
		return c.host.Scale(a, s)
	}

	aF := toFloat32(a)
	outF := make([]float32, len(a))

	C.scale_gpu(
		(*C.float)(unsafe.Pointer(&aF[0])),
		C.float(s),
		(*C.float)(unsafe.Pointer(&outF[0])),
		C.int(len(a)),
	)

	return toFloat64(outF)
}

func (c *CUDABackend) Add(a, b []float64) []float64 { return c.host.Add(a, b) }
func (c *CUDABackend) Sub(a, b []float64) []float64 { return c.host.Sub(a, b) }

func (c *CUDABackend) AddScaled(a, b []float64, s float64) []float64 {
	return c.host.AddScaled(a, b, s)
}

func (c *CUDABackend) SumN(vs ...[]float64) []float64 { return c.host.SumN(vs...) }
func (c *CUDABackend) Round2(a []float64) []float64   { return c.host.Round2(a) }

func toFloat32(a []float64) []float32 {
	out := make([]float32, len(a))
	for i, v := range a {
		out[i] = float32(v)
	}
	return out
}

func toFloat64(a []float32) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = float64(v)
	}
	return out
}
