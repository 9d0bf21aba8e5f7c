// Command hassgen generates typed Go accessors for the entities of a
// home-automation instance from a metadata snapshot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/syssam/hassgen/compiler/gen"
	"github.com/syssam/hassgen/compiler/load"
	"github.com/syssam/hassgen/internal/config"
	"github.com/syssam/hassgen/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		stop()
		os.Exit(1)
	}
}

// app carries the state shared by the subcommands.
type app struct {
	configPath string
	cfg        *config.Config
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"metadata": "metadata",
	"out":      "target",
	"package":  "package",
	"log-json": "log.json",
	"verbose":  "log.verbosity",
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "hassgen",
		Short: "Generate typed entity accessors for home-automation instances",
		Long: `hassgen turns a metadata snapshot of a home-automation instance into Go
source: one struct per domain with an accessor per entity, a root struct
reaching every domain, and typed entity and attribute records.

Configuration is read from hassgen.yaml (or --config), HASSGEN_* environment
variables and flags, in increasing order of precedence.

Examples:
  hassgen validate --metadata metadata.json
  hassgen generate --metadata metadata.json --out ./entities
  hassgen generate --metadata metadata.yaml --out ./entities --split --watch`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Configuration file (default: ./hassgen.yaml)")
	cmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v, -vv)")
	cmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// setup loads the configuration, binds the flags of the running command and
// initializes the logger.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.New(a.configPath)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "bind flag --%s", name)
			}
		}
	}
	c, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := logger.Initialize(c.Log.JSON, c.Log.Verbosity); err != nil {
		return errors.Wrap(err, "initialize logger")
	}
	a.cfg = c
	logger.Logger.Debugw("configuration loaded", "file", v.ConfigFileUsed(), "package", c.Package)
	return nil
}

// loadMetadata reads the configured metadata snapshot.
func (a *app) loadMetadata() (*load.Metadata, error) {
	if a.cfg.Metadata == "" {
		return nil, errors.WithHint(
			errors.New("no metadata file given"),
			"pass --metadata or set metadata in hassgen.yaml",
		)
	}
	return load.File(a.cfg.Metadata)
}

// genConfig builds the generator configuration for a snapshot.
func (a *app) genConfig(md *load.Metadata, extra ...gen.Option) (*gen.Config, error) {
	opts := append(a.cfg.Options(),
		gen.WithPlatformVersion(md.PlatformVersion),
		gen.WithLogger(logger.Named("hassgen")),
	)
	cfg, err := gen.NewConfig(append(opts, extra...)...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
