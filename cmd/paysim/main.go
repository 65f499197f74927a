package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/paysim/internal/bench"
	"github.com/san-kum/paysim/internal/compute"
	"github.com/san-kum/paysim/internal/config"
	"github.com/san-kum/paysim/internal/gen"
	"github.com/san-kum/paysim/internal/payroll"
	"github.com/san-kum/paysim/internal/report"
	"github.com/san-kum/paysim/internal/store"
	"github.com/san-kum/paysim/internal/tui"
)

var (
	nRows      int
	device     string
	seed       int64
	sampleRows int
	configFile string
	preset     string
	histField  string
	histBins   int
	outputFile string
	format     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paysim",
		Short: "payroll register simulation and backend benchmark",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate a register per backend and compare timings",
		Args:  cobra.NoArgs,
		RunE:  runBenchmark,
	}
	runCmd.Flags().IntVar(&nRows, "n_rows", config.DefaultRows, "number of payroll records to simulate")
	runCmd.Flags().StringVar(&device, "device", config.DefaultDevice, "backend to run: cpu, gpu or both")
	runCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	runCmd.Flags().IntVar(&sampleRows, "sample", config.DefaultSample, "sample rows to print")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&histField, "hist", "", "plot a histogram of this column after the run")
	runCmd.Flags().StringVar(&outputFile, "output", "", "write the full register to this file")
	runCmd.Flags().StringVar(&format, "format", "csv", "export format: csv or json")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "print a small deterministic register",
		Args:  cobra.NoArgs,
		RunE:  printSample,
	}
	sampleCmd.Flags().IntVar(&nRows, "n_rows", config.DefaultSample, "number of records")
	sampleCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")

	histCmd := &cobra.Command{
		Use:   "hist",
		Short: "plot the distribution of one register column",
		Args:  cobra.NoArgs,
		RunE:  plotHistogram,
	}
	histCmd.Flags().IntVar(&nRows, "n_rows", 100_000, "number of records")
	histCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	histCmd.Flags().StringVar(&histField, "field", "net_pay", "column to plot")
	histCmd.Flags().IntVar(&histBins, "bins", config.DefaultHistBins, "histogram bins")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "generate a register and write it to a file",
		Args:  cobra.NoArgs,
		RunE:  exportRegister,
	}
	exportCmd.Flags().IntVar(&nRows, "n_rows", config.DefaultRows, "number of records")
	exportCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	exportCmd.Flags().StringVar(&format, "format", "csv", "export format: csv or json")
	exportCmd.Flags().StringVar(&outputFile, "out", "", "output file path")
	exportCmd.MarkFlagRequired("out")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "browse a generated register interactively",
		Args:  cobra.NoArgs,
		RunE:  viewRegister,
	}
	viewCmd.Flags().IntVar(&nRows, "n_rows", 1000, "number of records")
	viewCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "list compute backends and availability",
		Args:  cobra.NoArgs,
		RunE:  listBackends,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named run presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tROWS\tDEVICE\tSEED")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", name, p.Rows, p.Device, p.Seed)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, sampleCmd, histCmd, exportCmd, viewCmd, backendsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file
	if cmd.Flags().Changed("n_rows") {
		cfg.Rows = nRows
	}
	if cmd.Flags().Changed("device") {
		cfg.Device = device
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("sample") {
		cfg.Sample = sampleRows
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	var cpuRun, gpuRun *bench.Measurement

	if cfg.Device == "cpu" || cfg.Device == "both" {
		fmt.Println("running payroll computation on cpu...")
		backend, _ := compute.ForDevice("cpu")
		m, err := bench.Run(backend, cfg.Rows, cfg.Seed)
		if err != nil {
			return err
		}
		report.PrintMeasurement(os.Stdout, m)
		report.PrintSample(os.Stdout, m.Table, cfg.Sample)
		fmt.Println()
		cpuRun = m
	}

	if cfg.Device == "gpu" || cfg.Device == "both" {
		backend, _ := compute.ForDevice("gpu")
		if !backend.Available() {
			fmt.Printf("error: %s; skipping accelerated measurement\n", backend.Name())
		} else {
			fmt.Printf("running payroll computation on %s...\n", backend.Name())
			m, err := bench.Run(backend, cfg.Rows, cfg.Seed)
			if err != nil {
				return err
			}
			report.PrintMeasurement(os.Stdout, m)
			report.PrintSample(os.Stdout, m.Table, cfg.Sample)
			fmt.Println()
			gpuRun = m
		}
	}

	if cfg.Device == "both" {
		report.PrintSummary(os.Stdout, cpuRun, gpuRun)
	}

	table := pickTable(cpuRun, gpuRun)
	if table == nil {
		return nil
	}

	if histField != "" {
		col := table.Column(histField)
		if col == nil {
			return fmt.Errorf("unknown column: %s", histField)
		}
		if err := report.PrintHistogram(os.Stdout, col, cfg.HistBins, histField); err != nil {
			return err
		}
		report.PrintStats(os.Stdout, histField, col)
	}

	if outputFile != "" {
		if err := store.ExportFile(outputFile, format, table); err != nil {
			return err
		}
		fmt.Printf("register written to %s\n", outputFile)
	}

	return nil
}

func pickTable(cpuRun, gpuRun *bench.Measurement) *payroll.Table {
	if cpuRun != nil {
		return cpuRun.Table
	}
	if gpuRun != nil {
		return gpuRun.Table
	}
	return nil
}

func printSample(cmd *cobra.Command, args []string) error {
	table, err := cpuRegister(nRows)
	if err != nil {
		return err
	}
	report.PrintSample(os.Stdout, table, table.Len())
	return nil
}

func plotHistogram(cmd *cobra.Command, args []string) error {
	table, err := cpuRegister(nRows)
	if err != nil {
		return err
	}
	col := table.Column(histField)
	if col == nil {
		return fmt.Errorf("unknown column: %s", histField)
	}
	if err := report.PrintHistogram(os.Stdout, col, histBins, histField); err != nil {
		return err
	}
	report.PrintStats(os.Stdout, histField, col)
	return nil
}

func exportRegister(cmd *cobra.Command, args []string) error {
	table, err := cpuRegister(nRows)
	if err != nil {
		return err
	}
	if err := store.ExportFile(outputFile, format, table); err != nil {
		return err
	}
	fmt.Printf("register written to %s (%d rows)\n", outputFile, table.Len())
	return nil
}

func viewRegister(cmd *cobra.Command, args []string) error {
	table, err := cpuRegister(nRows)
	if err != nil {
		return err
	}
	return tui.Browse(table)
}

func listBackends(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BACKEND\tAVAILABLE")
	for _, name := range []string{"cpu", "gpu"} {
		backend, _ := compute.ForDevice(name)
		fmt.Fprintf(w, "%s\t%v\n", backend.Name(), backend.Available())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("auto-selected: %s\n", compute.GetBackend().Name())
	return nil
}

func cpuRegister(n int) (*payroll.Table, error) {
	backend, _ := compute.ForDevice("cpu")
	return gen.New(backend, seed).Register(n)
}
