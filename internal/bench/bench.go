// Package bench times one generation+derivation pass per backend and
// compares the results.
package bench

import (
	"math"
	"time"

	"github.com/san-kum/paysim/internal/compute"
	"github.com/san-kum/paysim/internal/gen"
	"github.com/san-kum/paysim/internal/payroll"
)

type Measurement struct {
	Backend string
	Rows    int
	Seed    int64
	Elapsed time.Duration
	Table   *payroll.Table
}

// Run measures a single pass on b. The wall-clock span covers generation
// and derivation for every backend, so measurements are comparable.
func Run(b compute.Backend, n int, seed int64) (*Measurement, error) {
	g := gen.New(b, seed)

	start := time.Now()
	t, err := g.Register(n)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	return &Measurement{
		Backend: b.Name(),
		Rows:    n,
		Seed:    seed,
		Elapsed: elapsed,
		Table:   t,
	}, nil
}

// Speedup is the ratio of reference time to accelerated time. A zero
// accelerated time propagates +Inf rather than dividing by zero.
func Speedup(cpu, accel *Measurement) float64 {
	if accel.Elapsed <= 0 {
		return math.Inf(1)
	}
	return cpu.Elapsed.Seconds() / accel.Elapsed.Seconds()
}
