// Package report renders the human-readable output of a run: sample
// tables, per-backend timings, the speedup summary, and column histograms.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/paysim/internal/bench"
	"github.com/san-kum/paysim/internal/payroll"
	"github.com/san-kum/paysim/internal/stats"
)

var (
	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	value = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

// SampleRows is the default number of rows shown after a run.
const SampleRows = 5

// PrintSample writes the first rows of a register as a tab-aligned table.
func PrintSample(w io.Writer, t *payroll.Table, rows int) {
	if rows > t.Len() {
		rows = t.Len()
	}

	fmt.Fprintln(w, title.Render(fmt.Sprintf("sample payroll data (first %d rows):", rows)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTITLE\tPERIOD\tREG\tOT\tRATE\tGROSS\tFED\tSTATE\tSS\tMED\tHEALTH\tRETIRE\tOTHER\tNET")

	for i := 0; i < rows; i++ {
		r := t.Row(i)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.EmployeeID, r.EmployeeName, r.JobTitle, r.PayPeriod,
			r.RegularHours, r.OvertimeHours, r.BaseRate,
			r.GrossWages, r.FederalTax, r.StateTax, r.SocialSecurity, r.Medicare,
			r.HealthInsurance, r.Retirement, r.OtherDeductions, r.NetPay,
		)
	}

	tw.Flush()
}

// PrintMeasurement reports one backend's elapsed time.
func PrintMeasurement(w io.Writer, m *bench.Measurement) {
	fmt.Fprintf(w, "%s processing time for %d rows: %s seconds\n",
		m.Backend, m.Rows, value.Render(fmt.Sprintf("%.4f", m.Elapsed.Seconds())))
}

// PrintSummary compares the two measurements. When the accelerated
// measurement is missing the summary is skipped with a note, never a
// dangling reference.
func PrintSummary(w io.Writer, cpu, accel *bench.Measurement) {
	if cpu == nil {
		return
	}
	if accel == nil {
		fmt.Fprintln(w, dim.Render("accelerated backend did not run; no speedup summary"))
		return
	}

	fmt.Fprintln(w, title.Render("summary:"))
	fmt.Fprintf(w, "cpu time: %.4f seconds\n", cpu.Elapsed.Seconds())
	fmt.Fprintf(w, "gpu time: %.4f seconds\n", accel.Elapsed.Seconds())

	speedup := bench.Speedup(cpu, accel)
	if math.IsInf(speedup, 1) {
		fmt.Fprintln(w, "gpu speedup: inf (accelerated time was zero)")
		return
	}
	fmt.Fprintf(w, "gpu speedup: %s faster than cpu\n", value.Render(fmt.Sprintf("%.2fx", speedup)))
}

// PrintHistogram buckets a numeric column into bins and plots the counts.
func PrintHistogram(w io.Writer, values []float64, bins int, caption string) error {
	if len(values) == 0 {
		return fmt.Errorf("no values to plot")
	}
	if bins < 2 {
		bins = 2
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	counts := make([]float64, bins)
	for _, v := range values {
		idx := int(float64(bins) * (v - lo) / span)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	graph := asciigraph.Plot(counts,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("%s [%.2f .. %.2f]", caption, lo, hi)),
	)
	fmt.Fprintln(w, graph)
	return nil
}

// PrintStats writes a one-line summary of a numeric column, including the
// negative share when the column dips below zero.
func PrintStats(w io.Writer, name string, values []float64) {
	s := stats.Summarize(values)
	line := fmt.Sprintf("%s: n=%d min=%.2f max=%.2f mean=%.2f stddev=%.2f",
		name, s.Count, s.Min, s.Max, s.Mean, s.StdDev)
	if s.Min < 0 {
		line += fmt.Sprintf(" negative=%.2f%%", 100*stats.NegativeShare(values))
	}
	fmt.Fprintln(w, dim.Render(line))
}
