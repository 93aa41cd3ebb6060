// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// fmul-dv runs the binary32 multiplier differential verification suite
// against the bundled device model.
package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/miasolak/fp-multiply/device"
	"github.com/miasolak/fp-multiply/dv"
)

func setupLogging() {
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorableStderr(), &tint.Options{
		Level:   slog.LevelInfo,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

func run(cfg dv.Config, trace bool, traceFile string) error {
	rep := dv.NewReporter(os.Stdout)

	var tracer dv.Tracer
	var vcd *dv.VCD
	var traceOut *os.File
	if trace {
		f, err := os.Create(traceFile)
		if err != nil {
			return xerrors.Errorf("open trace: %w", err)
		}
		traceOut = f
		vcd = dv.NewVCD(f)
		tracer = vcd
	}

	h := dv.New(cfg, device.New(), rep, tracer)
	stats := h.Run()
	rep.Summary(stats, cfg.CheckFlags)
	slog.Info("coverage", "stats", h.Coverage())

	if traceOut != nil {
		if err := vcd.Err(); err != nil {
			return err
		}
		if err := traceOut.Close(); err != nil {
			return xerrors.Errorf("close trace: %w", err)
		}
		slog.Info("trace written", "path", traceFile)
	}

	if !stats.Passed() {
		return xerrors.Errorf("%d of %d cases failed", stats.Failures, stats.TestsRun)
	}
	return nil
}

func main() {
	cfg := dv.DefaultConfig()
	trace := false
	traceFile := "wave.vcd"

	rootCmd := &cobra.Command{
		Use:   "fmul-dv",
		Short: "Differential verification of a binary32 multiplier",
		Long: "fmul-dv drives the multiplier under test with directed and seeded random\n" +
			"operand vectors and compares every output bit for bit against an\n" +
			"integer-only reference model (DAZ/FTZ, canonical qNaN, round to nearest even).",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			return run(cfg, trace, traceFile)
		},
	}
	fl := rootCmd.Flags()
	fl.IntVar(&cfg.RandomCases, "n", cfg.RandomCases, "number of random test cases")
	fl.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "operand generator seed")
	fl.BoolVar(&cfg.PrintPasses, "print-ok", cfg.PrintPasses, "print passing cases too")
	fl.BoolVar(&cfg.CheckFlags, "check-flags", cfg.CheckFlags, "fail on invalid/overflow/underflow/inexact mismatches")
	fl.BoolVar(&trace, "trace", false, "write a VCD waveform trace")
	fl.StringVar(&traceFile, "trace-file", traceFile, "VCD trace output path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
