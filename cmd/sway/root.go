package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/TrevorS/sway"
	"github.com/TrevorS/sway/internal/config"
	"github.com/TrevorS/sway/internal/report"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	opts       config.Options
	flags      config.Options
	configPath string
	plain      bool

	stdout, stderr io.Writer
	log            *slog.Logger
	pr             *report.Printer
	rng            *sway.Rand
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{flags: config.Default(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "sway",
		Short: "Cluster a table by recursive random projection and prune it toward its best rows",
		Long: `sway reads a CSV whose header names each column's type and role
(Uppercase = numeric, trailing + / - = goal to maximize / minimize,
trailing X = skip) and recursively splits its rows by projecting them onto
two distant anchors. "cluster" keeps both halves; "sway" keeps only the half
whose anchor dominates on the goals.`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML options file; flags override it")
	pf.StringVarP(&a.flags.File, "file", "f", a.flags.File, "CSV data file")
	pf.StringVarP(&a.flags.Grid, "grid", "g", a.flags.Grid, "repertory grid JSON file")
	pf.Int64VarP(&a.flags.Seed, "seed", "s", a.flags.Seed, "random number seed")
	pf.Float64VarP(&a.flags.P, "p", "p", a.flags.P, "distance coefficient")
	pf.Float64Var(&a.flags.Far, "far", a.flags.Far, "percentile of neighbors used as the far anchor")
	pf.Float64Var(&a.flags.Min, "min", a.flags.Min, "stop splitting at N^min rows")
	pf.IntVar(&a.flags.Sample, "sample", a.flags.Sample, "rows sampled when picking anchors")
	pf.IntVar(&a.flags.Places, "places", a.flags.Places, "decimal places in reported statistics")
	pf.StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel, "debug, info, warn or error")
	pf.BoolVar(&a.plain, "plain", false, "never style output")

	for _, c := range checks {
		root.AddCommand(a.checkCmd(c))
	}
	root.AddCommand(a.allCmd())
	return root
}

// setup resolves options as defaults, then the YAML file, then any flag set
// on the command line.
func (a *app) setup(cmd *cobra.Command) error {
	opts := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		opts = loaded
	}
	overlay(cmd, &opts, a.flags)
	if err := opts.Validate(); err != nil {
		return err
	}
	a.opts = opts
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: opts.Level()}))
	if a.plain {
		a.pr = report.NewPlain(a.stdout)
	} else {
		a.pr = report.New(a.stdout)
	}
	a.rng = sway.NewRand(opts.Seed)
	a.log.Debug("options resolved", "file", opts.File, "seed", opts.Seed, "config", a.configPath)
	return nil
}

func overlay(cmd *cobra.Command, dst *config.Options, src config.Options) {
	changed := cmd.Flags().Changed
	if changed("file") {
		dst.File = src.File
	}
	if changed("grid") {
		dst.Grid = src.Grid
	}
	if changed("seed") {
		dst.Seed = src.Seed
	}
	if changed("p") {
		dst.P = src.P
	}
	if changed("far") {
		dst.Far = src.Far
	}
	if changed("min") {
		dst.Min = src.Min
	}
	if changed("sample") {
		dst.Sample = src.Sample
	}
	if changed("places") {
		dst.Places = src.Places
	}
	if changed("log-level") {
		dst.LogLevel = src.LogLevel
	}
}

func (a *app) engine() sway.Config {
	return a.opts.Engine(a.log)
}

func (a *app) checkCmd(c check) *cobra.Command {
	return &cobra.Command{
		Use:   c.name,
		Short: c.short,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			ok, err := a.run(c)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("check %s failed", c.name)
			}
			return nil
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every check and exit non-zero if any fails",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			failed := 0
			for _, c := range checks {
				ok, err := a.run(c)
				detail := ""
				if err != nil {
					ok, detail = false, err.Error()
				}
				if !ok {
					failed++
				}
				if err := a.pr.Check(c.name, ok, detail); err != nil {
					return err
				}
			}
			if err := a.pr.Line("%d passed, %d failed", len(checks)-failed, failed); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(checks))
			}
			return nil
		},
	}
}

// run executes one check from a freshly seeded generator.
func (a *app) run(c check) (bool, error) {
	a.rng.Reseed(a.opts.Seed)
	if err := a.pr.Title("-- " + c.name); err != nil {
		return false, err
	}
	return c.fn(a)
}
