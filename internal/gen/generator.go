package gen

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/san-kum/paysim/internal/compute"
	"github.com/san-kum/paysim/internal/payroll"
)

// ErrBackendUnavailable is reported when the selected backend cannot run
// on this build or machine. Callers skip the variant; there is no silent
// fallback to another backend.
var ErrBackendUnavailable = errors.New("compute backend unavailable")

// Generator produces payroll tables on one backend. Each Generator owns
// its rng, so two generators with the same seed produce identical tables
// and two backends never share a random stream.
type Generator struct {
	backend compute.Backend
	rng     *rand.Rand
}

func New(backend compute.Backend, seed int64) *Generator {
	return &Generator{
		backend: backend,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (g *Generator) Backend() compute.Backend { return g.backend }

// IDWidth is the zero-padding width for employee IDs: at least three
// digits, wider when the row count needs it.
func IDWidth(n int) int {
	width := len(strconv.Itoa(n))
	if width < 3 {
		width = 3
	}
	return width
}

// Generate fills the input columns for n records. Categorical string
// columns always draw on the host; numeric columns draw on the backend.
func (g *Generator) Generate(n int) (*payroll.Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("row count must be at least 1, got %d", n)
	}
	if !g.backend.Available() {
		return nil, fmt.Errorf("%s: %w", g.backend.Name(), ErrBackendUnavailable)
	}

	firsts := g.choices(payroll.FirstNames, n)
	lasts := g.choices(payroll.LastNames, n)
	names := make([]string, n)
	for i := range names {
		names[i] = firsts[i] + " " + lasts[i]
	}

	width := IDWidth(n)
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%0*d", width, i+1)
	}

	t := &payroll.Table{
		EmployeeNames: names,
		EmployeeIDs:   ids,
		JobTitles:     g.choices(payroll.JobTitles, n),
		PayPeriods:    g.choices(payroll.PayPeriods, n),

		RegularHours:  g.backend.UniformInt(g.rng, n, payroll.RegularHoursMin, payroll.RegularHoursMax),
		OvertimeHours: g.backend.UniformInt(g.rng, n, payroll.OvertimeHoursMin, payroll.OvertimeHoursMax),
		BaseRates:     g.backend.Uniform(g.rng, n, payroll.BaseRateMin, payroll.BaseRateMax),
	}

	return t, nil
}

// Derive computes the monetary columns of a generated table.
func (g *Generator) Derive(t *payroll.Table) {
	payroll.Derive(g.backend, g.rng, t)
}

// Register generates n records and derives the full register in one call.
func (g *Generator) Register(n int) (*payroll.Table, error) {
	t, err := g.Generate(n)
	if err != nil {
		return nil, err
	}
	g.Derive(t)
	return t, nil
}

func (g *Generator) choices(pool []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = pool[g.rng.Intn(len(pool))]
	}
	return out
}
