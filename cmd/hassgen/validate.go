package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/syssam/hassgen/compiler/gen"
	"github.com/syssam/hassgen/internal/version"
)

func newValidateCmd(a *app) *cobra.Command {
	var constraint string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a metadata snapshot without writing any file",
		Long: `Validate runs the generator on a metadata snapshot and reports malformed
entries, naming collisions and invalid sensor partitions.

With --platform the snapshot's platform version must also satisfy a semver
constraint such as ">= 2024.1".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			md, err := a.loadMetadata()
			if err != nil {
				return err
			}
			if constraint != "" {
				if md.PlatformVersion == "" {
					return errors.WithHint(
						errors.New("snapshot has no platform version"),
						"collect the snapshot again or drop --platform",
					)
				}
				v, err := version.ReplaceBeta(md.PlatformVersion)
				if err != nil {
					return err
				}
				if err := version.Check(v, constraint); err != nil {
					return err
				}
			}
			cfg, err := a.genConfig(md)
			if err != nil {
				return err
			}
			decls, err := gen.Generate(cfg, md.Domains)
			if err != nil {
				return err
			}
			groups, records := summarize(decls)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d domain group(s), %d entity record(s), %d declaration(s)\n",
				a.cfg.Metadata, groups, records, len(decls))
			return nil
		},
	}
	cmd.Flags().String("metadata", "", "Metadata snapshot file")
	cmd.Flags().StringVar(&constraint, "platform", "", "Semver constraint on the platform version")
	return cmd
}

func summarize(decls []gen.Decl) (groups, records int) {
	for _, d := range decls {
		switch d := d.(type) {
		case *gen.Class:
			if d.Domain != "" {
				groups++
			}
		case *gen.Record:
			if d.Kind == gen.EntityRecord {
				records++
			}
		}
	}
	return groups, records
}
