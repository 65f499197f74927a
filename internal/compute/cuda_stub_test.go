//go:build !cuda

package compute

import (
	"math/rand"
	"testing"
)

func TestCUDAStubUnavailable(t *testing.T) {
	c := NewCUDABackend()

	if c.Available() {
		t.Fatal("stub must report unavailable")
	}
	if c.Name() != "cuda (not available)" {
		t.Errorf("unexpected name: %s", c.Name())
	}
}

func TestCUDAStubDelegatesArithmetic(t *testing.T) {
	c := NewCUDABackend()
	rng := rand.New(rand.NewSource(3))

	out := c.Uniform(rng, 50, 0, 1)
	if len(out) != 50 {
		t.Fatalf("expected 50 draws, got %d", len(out))
	}

	sum := c.Add([]float64{1, 2}, []float64{3, 4})
	if sum[0] != 4 || sum[1] != 6 {
		t.Errorf("delegated add = %v", sum)
	}
}

func TestAutoSelectFallsBackToCPU(t *testing.T) {
	b := AutoSelectBackend()
	if b.Name() != "cpu" {
		t.Errorf("expected cpu backend without a device, got %s", b.Name())
	}
}
