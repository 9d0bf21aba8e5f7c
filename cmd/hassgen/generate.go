package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/syssam/hassgen/compiler/gen"
	"github.com/syssam/hassgen/compiler/gen/golang"
	"github.com/syssam/hassgen/internal/logger"
)

func newGenerateCmd(a *app) *cobra.Command {
	var split, watch, dryRun bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go source from a metadata snapshot",
		Long: `Generate reads a metadata snapshot (.json, .yaml or .msgpack) and writes the
generated accessors to the target directory. Files a previous run generated
that are no longer produced are removed.

With --watch the snapshot is watched and the code regenerated whenever it
changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.checkPaths(dryRun); err != nil {
				return err
			}
			run := func(ctx context.Context) error {
				return a.generate(ctx, cmd.OutOrStdout(), split, dryRun)
			}
			err := run(cmd.Context())
			if !watch {
				return err
			}
			if err != nil {
				logger.Logger.Errorw("generation failed", "error", err)
			}
			return watchFile(cmd.Context(), a.cfg.Metadata, run)
		},
	}
	cmd.Flags().String("metadata", "", "Metadata snapshot file")
	cmd.Flags().StringP("out", "o", "", "Output directory")
	cmd.Flags().String("package", "", "Package name of the generated code")
	cmd.Flags().BoolVar(&split, "split", false, "Write one file per domain group")
	cmd.Flags().BoolVar(&watch, "watch", false, "Regenerate when the metadata snapshot changes")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the generated source instead of writing it")
	return cmd
}

func (a *app) generate(ctx context.Context, w io.Writer, split, dryRun bool) error {
	md, err := a.loadMetadata()
	if err != nil {
		return err
	}
	var extra []gen.Option
	if split {
		extra = append(extra, gen.WithFeatures(gen.FeatureSplitOutput))
	}
	cfg, err := a.genConfig(md, extra...)
	if err != nil {
		return err
	}

	g := gen.NewGenerator(cfg)
	g.WithEmitter(golang.NewEmitter(g))

	if dryRun {
		files, err := g.Render(ctx, md.Domains)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(w, "// file: %s\n%s\n", f.Name, f.Content)
		}
		return nil
	}

	if err := g.Generate(ctx, md.Domains); err != nil {
		return err
	}
	m := g.Metrics()
	fmt.Fprintf(w, "Generated %d file(s), %d bytes, in %s\n", m.FilesGenerated, m.TotalBytes, cfg.Target)
	if m.FilesRemoved > 0 {
		fmt.Fprintf(w, "Removed %d stale file(s)\n", m.FilesRemoved)
	}
	return nil
}

// checkPaths reports missing input and output paths before any work starts,
// so that watch mode never runs without a file to watch.
func (a *app) checkPaths(dryRun bool) error {
	if a.cfg.Metadata == "" {
		return errors.WithHint(
			errors.New("no metadata file given"),
			"pass --metadata or set metadata in hassgen.yaml",
		)
	}
	if !dryRun && a.cfg.Target == "" {
		return errors.WithHint(
			errors.New("no output directory given"),
			"pass --out or set target in hassgen.yaml",
		)
	}
	return nil
}
