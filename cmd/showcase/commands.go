package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/solidstream/catalog"
	"github.com/katalvlaran/solidstream/internal/config"
)

// app carries flag values and the resolved runtime state shared by commands.
type app struct {
	verbose    bool
	configPath string

	cfg    config.Config
	logger *zap.Logger
	// ownLogger is true when the logger was built here and must be synced.
	ownLogger bool
}

// newRootCmd assembles the command tree. A nil logger is replaced by a
// production logger at startup.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "showcase",
		Short: "Run sequence-operation and design-principle demonstrations",
		Long: `showcase prints small, deterministic demonstrations:

  - sequence operations: range, min, distinct, filter, map, average,
    find, count, sum, statistics, groupby, reduce
  - design principles: srp (single responsibility), lsp (Liskov substitution)

Run without a subcommand to execute the demos selected by --config.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.ownLogger {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			demos, err := a.cfg.Selected()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), cmd.OutOrStdout(), demos)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a showcase.yaml run configuration")

	root.AddCommand(a.listCmd(), a.runCmd(), a.allCmd(), a.solidCmd())

	return root
}

// setup loads the configuration and, when needed, builds the logger.
func (a *app) setup(*cobra.Command, []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.verbose = a.verbose || cfg.Verbose

	if a.logger == nil {
		zc := zap.NewProductionConfig()
		if a.verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if a.logger, err = zc.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.ownLogger = true
	}
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Strings("demos", cfg.Demos),
		zap.Bool("verbose", a.verbose))

	return nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available demonstrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, d := range catalog.Demos() {
				if _, err := fmt.Fprintf(w, "%-12s %s\n", d.Name, d.Summary); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run the named demonstrations (default: those in --config)",
		Example: `  showcase run distinct
  showcase run min groupby reduce`,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if len(args) > 0 {
				cfg = config.Config{Demos: args, Verbose: a.verbose}
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			demos, err := cfg.Selected()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), cmd.OutOrStdout(), demos)
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout(), catalog.Demos())
		},
	}
}

func (a *app) solidCmd() *cobra.Command {
	principles := []string{"srp", "lsp"}
	return &cobra.Command{
		Use:       "solid [srp|lsp]",
		Short:     "Run the design-principle demonstrations",
		ValidArgs: principles,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := principles
			if len(args) == 1 {
				names = args
			}
			demos, err := config.Config{Demos: names}.Selected()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), cmd.OutOrStdout(), demos)
		},
	}
}

// run executes demos in order. With more than one demo each output is
// preceded by a "== name ==" header.
func (a *app) run(ctx context.Context, w io.Writer, demos []catalog.Demo) error {
	headers := len(demos) > 1
	for _, d := range demos {
		if err := ctx.Err(); err != nil {
			return err
		}
		if headers {
			if _, err := fmt.Fprintf(w, "== %s ==\n", d.Name); err != nil {
				return err
			}
		}
		a.logger.Debug("running demo", zap.String("demo", d.Name))
		if err := d.Run(ctx, w); err != nil {
			a.logger.Error("demo failed", zap.String("demo", d.Name), zap.Error(err))
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
	}

	return nil
}
