// Package cli wires the hypercube command line: cobra commands, viper-backed
// flag defaults (config file and HYPERCUBE_* environment) and output as
// tables or JSON.
package cli

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hypercube"
	"github.com/katalvlaran/hypercube/core"
	"github.com/katalvlaran/hypercube/internal/ui"
)

// EnvPrefix prefixes environment variables that override flag defaults,
// e.g. HYPERCUBE_DIM=8.
const EnvPrefix = "HYPERCUBE"

var qjson = jsoniter.ConfigCompatibleWithStandardLibrary

// app carries flag values and shared state for one command execution.
type app struct {
	out    io.Writer
	errOut io.Writer
	v      *viper.Viper
	log    zerolog.Logger

	dim      int
	seed     int64
	remove   int
	isolate  []string
	loglevel string
	jsonOut  bool
	plain    bool
	config   string
}

// NewRootCommand builds the command tree writing results to out and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "hypercube",
		Short:         "Build, damage and search n-dimensional hypercube graphs",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.IntVar(&a.dim, "dim", 4, "Hypercube dimension (1-20)")
	pf.Int64Var(&a.seed, "seed", core.DefaultSeed, "Seed for random edge removal")
	pf.IntVar(&a.remove, "remove", 0, "Number of random edges to remove before running")
	pf.StringSliceVar(&a.isolate, "isolate", nil, "Bit-strings of nodes to cut off before running")
	pf.StringVar(&a.loglevel, "loglevel", "info", "Console log level ("+strings.Join(ui.LogLevels, ", ")+")")
	pf.BoolVar(&a.jsonOut, "json", false, "Print results as JSON")
	pf.BoolVar(&a.plain, "plain", false, "Disable colours and table styling")
	pf.StringVar(&a.config, "config", "", "Configuration file (yaml, json or toml)")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := a.loadConfiguration(cmd.Root()); err != nil {
			return err
		}
		log, err := ui.NewLogger(a.errOut, a.loglevel, !a.plain)
		if err != nil {
			return err
		}
		a.log = log
		if a.plain || a.jsonOut {
			ui.Plain()
		} else {
			ui.Styled()
		}

		return nil
	}

	root.AddCommand(
		a.pathCommand("greedy", "Greedy weight-guided walk with backtracking", greedySearch),
		a.pathCommand("shortest", "Minimum-hop path via A*", shortestSearch),
		a.compareCommand(),
		a.distanceCommand(),
		a.adjacencyCommand(),
		a.componentsCommand(),
		a.statsCommand(),
		a.scenarioCommand(),
	)

	return root
}

// loadConfiguration applies config-file and environment values to every flag
// the user did not set explicitly.
func (a *app) loadConfiguration(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.config != "" {
		a.v.SetConfigFile(a.config)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.config, err)
		}
	}

	return bindFlags(cmd, a.v)
}

// bindFlags sets every unchanged flag of cmd and its subcommands from v.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var firstErr error
	apply := func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		var err error
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			err = sv.Replace(v.GetStringSlice(f.Name))
		} else {
			err = f.Value.Set(v.GetString(f.Name))
		}
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("flag --%s: %w", f.Name, err)
		}
	}
	cmd.PersistentFlags().VisitAll(apply)
	cmd.Flags().VisitAll(apply)
	for _, sub := range cmd.Commands() {
		if err := bindFlags(sub, v); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// graph builds the cube described by the global flags and applies the
// requested damage.
func (a *app) graph() (*hypercube.Graph, error) {
	g, err := hypercube.BuildGraph(a.dim, a.seed, core.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	for _, bits := range a.isolate {
		n, err := g.Isolate(bits)
		if err != nil {
			return nil, fmt.Errorf("isolate %s: %w", bits, err)
		}
		a.log.Info().Str("node", bits).Int("removed", n).Msg("Node isolated")
	}
	if a.remove > 0 {
		if err = g.Subgraph(a.remove); err != nil {
			return nil, err
		}
		a.log.Info().Int("removed", a.remove).Int("edges", g.EdgeCount()).Int64("seed", a.seed).Msg("Random edges removed")
	}

	return g, nil
}

// emit prints v as JSON when --json is set, otherwise calls render.
func (a *app) emit(v any, render func() error) error {
	if !a.jsonOut {
		return render()
	}
	enc := qjson.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
