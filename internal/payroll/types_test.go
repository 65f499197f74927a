package payroll

import "testing"

func TestColumnLookup(t *testing.T) {
	tbl, _ := testTable(t, 10, 1)

	for _, name := range MonetaryFields {
		col := tbl.Column(name)
		if col == nil {
			t.Errorf("Column(%q) = nil", name)
			continue
		}
		if len(col) != tbl.Len() {
			t.Errorf("Column(%q) has %d values, want %d", name, len(col), tbl.Len())
		}
	}

	if tbl.Column("base_rate") == nil {
		t.Error("Column(base_rate) = nil")
	}
	if tbl.Column("bogus") != nil {
		t.Error("expected nil for unknown column")
	}
}

func TestRowView(t *testing.T) {
	tbl, _ := testTable(t, 10, 1)
	tbl.EmployeeNames[3] = "Jane Doe"
	tbl.EmployeeIDs[3] = "004"

	r := tbl.Row(3)
	if r.EmployeeName != "Jane Doe" || r.EmployeeID != "004" {
		t.Errorf("unexpected row view: %+v", r)
	}
	if r.GrossWages != tbl.GrossWages[3] || r.NetPay != tbl.NetPay[3] {
		t.Errorf("row view monetary fields do not match columns")
	}
}

func TestRowViewBeforeDerive(t *testing.T) {
	tbl := &Table{
		EmployeeNames: []string{"John Smith"},
		EmployeeIDs:   []string{"001"},
		JobTitles:     []string{"Clerk"},
		PayPeriods:    []string{"01/01-01/15"},
		RegularHours:  []int{72},
		OvertimeHours: []int{3},
		BaseRates:     []float64{20.0},
	}

	r := tbl.Row(0)
	if r.NetPay != 0 || r.GrossWages != 0 {
		t.Errorf("underived table should report zero monetary fields, got %+v", r)
	}
}
