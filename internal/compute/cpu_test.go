package compute

import (
	"math/rand"
	"testing"
)

func TestUniformRange(t *testing.T) {
	c := NewCPUBackend()
	rng := rand.New(rand.NewSource(42))

	out := c.Uniform(rng, 10_000, 15, 50)
	if len(out) != 10_000 {
		t.Fatalf("expected 10000 draws, got %d", len(out))
	}
	for i, v := range out {
		if v < 15 || v >= 50 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
	}
}

func TestUniformDeterministic(t *testing.T) {
	c := NewCPUBackend()

	a := c.Uniform(rand.New(rand.NewSource(7)), 100, 0, 1)
	b := c.Uniform(rand.New(rand.NewSource(7)), 100, 0, 1)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs across identical seeds: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestUniformIntInclusiveBounds(t *testing.T) {
	c := NewCPUBackend()
	rng := rand.New(rand.NewSource(1))

	seen := map[int]bool{}
	for _, v := range c.UniformInt(rng, 5000, 70, 80) {
		if v < 70 || v > 80 {
			t.Fatalf("draw out of range: %d", v)
		}
		seen[v] = true
	}

	if !seen[70] || !seen[80] {
		t.Errorf("expected both endpoints to occur, saw 70=%v 80=%v", seen[70], seen[80])
	}
}

func TestElementwiseOps(t *testing.T) {
	c := NewCPUBackend()

	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	tests := []struct {
		name string
		got  []float64
		want []float64
	}{
		{"add", c.Add(a, b), []float64{5, 7, 9}},
		{"sub", c.Sub(b, a), []float64{3, 3, 3}},
		{"mul", c.Mul(a, b), []float64{4, 10, 18}},
		{"scale", c.Scale(a, 2), []float64{2, 4, 6}},
		{"addscaled", c.AddScaled(a, b, 1.5), []float64{7, 9.5, 12}},
		{"sumn", c.SumN(a, b, a), []float64{6, 9, 12}},
	}

	for _, tt := range tests {
		if len(tt.got) != len(tt.want) {
			t.Fatalf("%s: length %d, want %d", tt.name, len(tt.got), len(tt.want))
		}
		for i := range tt.want {
			if tt.got[i] != tt.want[i] {
				t.Errorf("%s[%d] = %v, want %v", tt.name, i, tt.got[i], tt.want[i])
			}
		}
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	c := NewCPUBackend()
	n := serialThreshold * 4

	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = float64(i)
		b[i] = float64(n - i)
	}

	got := c.Add(a, b)
	for i := range got {
		if got[i] != a[i]+b[i] {
			t.Fatalf("parallel add mismatch at %d: %v", i, got[i])
		}
	}

	sum := c.SumN(a, b, a)
	for i := range sum {
		if sum[i] != 2*a[i]+b[i] {
			t.Fatalf("parallel sumn mismatch at %d: %v", i, sum[i])
		}
	}
}

func TestFloats(t *testing.T) {
	got := Floats([]int{70, 0, 80})
	want := []float64{70, 0, 80}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Floats[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestForDevice(t *testing.T) {
	tests := []struct {
		device string
		ok     bool
	}{
		{"cpu", true},
		{"gpu", true},
		{"cuda", true},
		{"tpu", false},
		{"", false},
	}

	for _, tt := range tests {
		b, ok := ForDevice(tt.device)
		if ok != tt.ok {
			t.Errorf("ForDevice(%q) ok = %v, want %v", tt.device, ok, tt.ok)
		}
		if ok && b == nil {
			t.Errorf("ForDevice(%q) returned nil backend", tt.device)
		}
	}
}
