// Package store writes a generated register to CSV or JSON. It is a
// one-shot export of the in-memory table, not a run database.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/paysim/internal/payroll"
)

var csvHeader = []string{
	"Employee ID", "Employee Name", "Job Title", "Pay Period", "Hourly Rate",
	"Regular Hours", "Overtime Hours", "Gross Wages", "Federal Tax", "State Tax",
	"Social Security", "Medicare", "Health Insurance", "Retirement",
	"Other Deductions", "Net Pay",
}

// WriteCSV writes the full register with monetary values at two decimals.
func WriteCSV(w io.Writer, t *payroll.Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}

	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		row := []string{
			r.EmployeeID,
			r.EmployeeName,
			r.JobTitle,
			r.PayPeriod,
			fmt.Sprintf("%.2f", r.BaseRate),
			strconv.Itoa(r.RegularHours),
			strconv.Itoa(r.OvertimeHours),
			fmt.Sprintf("%.2f", r.GrossWages),
			fmt.Sprintf("%.2f", r.FederalTax),
			fmt.Sprintf("%.2f", r.StateTax),
			fmt.Sprintf("%.2f", r.SocialSecurity),
			fmt.Sprintf("%.2f", r.Medicare),
			fmt.Sprintf("%.2f", r.HealthInsurance),
			fmt.Sprintf("%.2f", r.Retirement),
			fmt.Sprintf("%.2f", r.OtherDeductions),
			fmt.Sprintf("%.2f", r.NetPay),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the register as an indented array of records.
func WriteJSON(w io.Writer, t *payroll.Table) error {
	records := make([]payroll.Record, t.Len())
	for i := range records {
		records[i] = t.Row(i)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// ExportFile writes the register to path in the given format, "csv" or
// "json".
func ExportFile(path, format string, t *payroll.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()

	switch format {
	case "csv":
		err = WriteCSV(f, t)
	case "json":
		err = WriteJSON(f, t)
	default:
		err = fmt.Errorf("unknown export format: %s", format)
	}
	return err
}
