package main

import (
	"io"

	"github.com/desertwitch/skeleton/internal/loader"
	"github.com/desertwitch/skeleton/internal/schema"
	"github.com/spf13/cobra"
)

func newExportCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the built-in layout as a YAML schema",
		Long: `export prints the built-in layout as YAML. The output can be edited and
passed back with --schema.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return loader.EncodeYAML(stdout, schema.DefaultLayout())
		},
	}
}
