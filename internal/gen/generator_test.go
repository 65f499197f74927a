package gen

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/san-kum/paysim/internal/compute"
	"github.com/san-kum/paysim/internal/payroll"
)

func TestGenerateRowCount(t *testing.T) {
	for _, n := range []int{1, 5, 1000} {
		g := New(compute.NewCPUBackend(), 42)
		tbl, err := g.Register(n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if tbl.Len() != n {
			t.Errorf("n=%d: table has %d rows", n, tbl.Len())
		}
		if len(tbl.NetPay) != n {
			t.Errorf("n=%d: net pay column has %d rows", n, len(tbl.NetPay))
		}
	}
}

func TestGenerateRejectsBadCount(t *testing.T) {
	g := New(compute.NewCPUBackend(), 42)
	for _, n := range []int{0, -1} {
		if _, err := g.Generate(n); err == nil {
			t.Errorf("n=%d: expected error", n)
		}
	}
}

func TestIDWidth(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 3},
		{999, 3},
		{1000, 4},
		{12345, 5},
		{1_000_000, 7},
	}

	for _, tt := range tests {
		if got := IDWidth(tt.n); got != tt.want {
			t.Errorf("IDWidth(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestEmployeeIDs(t *testing.T) {
	g := New(compute.NewCPUBackend(), 42)
	tbl, err := g.Generate(5)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"001", "002", "003", "004", "005"}
	if !reflect.DeepEqual(tbl.EmployeeIDs, want) {
		t.Errorf("ids = %v, want %v", tbl.EmployeeIDs, want)
	}

	g = New(compute.NewCPUBackend(), 42)
	tbl, err = g.Generate(1500)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.EmployeeIDs[0] != "0001" || tbl.EmployeeIDs[1499] != "1500" {
		t.Errorf("unexpected padded ids: %s .. %s", tbl.EmployeeIDs[0], tbl.EmployeeIDs[1499])
	}

	seen := map[string]bool{}
	for _, id := range tbl.EmployeeIDs {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestFieldRanges(t *testing.T) {
	g := New(compute.NewCPUBackend(), 42)
	tbl, err := g.Generate(2000)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < tbl.Len(); i++ {
		if h := tbl.RegularHours[i]; h < payroll.RegularHoursMin || h > payroll.RegularHoursMax {
			t.Fatalf("row %d: regular hours %d", i, h)
		}
		if h := tbl.OvertimeHours[i]; h < payroll.OvertimeHoursMin || h > payroll.OvertimeHoursMax {
			t.Fatalf("row %d: overtime hours %d", i, h)
		}
		if r := tbl.BaseRates[i]; r < payroll.BaseRateMin || r >= payroll.BaseRateMax {
			t.Fatalf("row %d: base rate %v", i, r)
		}
		if !slices.Contains(payroll.JobTitles, tbl.JobTitles[i]) {
			t.Fatalf("row %d: unknown title %q", i, tbl.JobTitles[i])
		}
		if !slices.Contains(payroll.PayPeriods, tbl.PayPeriods[i]) {
			t.Fatalf("row %d: unknown period %q", i, tbl.PayPeriods[i])
		}
	}
}

func TestNamesComeFromPools(t *testing.T) {
	g := New(compute.NewCPUBackend(), 42)
	tbl, err := g.Generate(200)
	if err != nil {
		t.Fatal(err)
	}

	valid := map[string]bool{}
	for _, f := range payroll.FirstNames {
		for _, l := range payroll.LastNames {
			valid[fmt.Sprintf("%s %s", f, l)] = true
		}
	}

	for i, name := range tbl.EmployeeNames {
		if !valid[name] {
			t.Fatalf("row %d: unexpected name %q", i, name)
		}
	}
}

func TestDeterministicWithFixedSeed(t *testing.T) {
	a, err := New(compute.NewCPUBackend(), 42).Register(5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(compute.NewCPUBackend(), 42).Register(5)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed must produce identical tables")
	}
}

func TestSeedsProduceIndependentStreams(t *testing.T) {
	a, err := New(compute.NewCPUBackend(), 1).Register(100)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(compute.NewCPUBackend(), 2).Register(100)
	if err != nil {
		t.Fatal(err)
	}

	if reflect.DeepEqual(a.BaseRates, b.BaseRates) {
		t.Error("different seeds produced identical rate columns")
	}
}

func TestUnavailableBackend(t *testing.T) {
	cuda := compute.NewCUDABackend()
	if cuda.Available() {
		t.Skip("cuda device present")
	}

	g := New(cuda, 42)
	_, err := g.Generate(10)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}
