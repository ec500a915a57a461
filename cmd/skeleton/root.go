package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/desertwitch/skeleton/internal/configuration"
	"github.com/desertwitch/skeleton/internal/loader"
	"github.com/desertwitch/skeleton/internal/materialize"
	"github.com/desertwitch/skeleton/internal/preview"
	"github.com/desertwitch/skeleton/internal/schema"
	"github.com/desertwitch/skeleton/internal/syscalls"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	base         string
	schemaPath   string
	configPath   string
	keepExisting bool
	dryRun       bool
	jsonOutput   bool
	verbose      bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "skeleton",
		Short: "Generate an empty project directory structure",
		Long: `skeleton creates the directories and empty files of a project layout.
Without arguments the built-in layered Flutter layout (core, data, domain,
presentation) is created in the current directory. Existing directories are
reused, existing files are truncated unless --keep-existing is given.`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(stderr, flags.verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags, stdout)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&flags.base, "base", ".", "directory to generate the structure in")
	f.StringVar(&flags.schemaPath, "schema", "", "YAML or JSON schema file (default: built-in layout)")
	f.StringVar(&flags.configPath, "config", "", "env-style configuration file")
	f.BoolVar(&flags.keepExisting, "keep-existing", false, "leave existing files untouched instead of truncating them")
	f.BoolVar(&flags.dryRun, "dry-run", false, "show the resulting tree without touching the filesystem")
	f.BoolVar(&flags.jsonOutput, "json", false, "print a JSON report instead of the confirmation message")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newExportCommand(stdout))

	return cmd
}

func resolveSettings(cmd *cobra.Command, flags *rootFlags) (configuration.Settings, error) {
	settings := configuration.DefaultSettings()

	if flags.configPath != "" {
		var err error

		configHandler := configuration.NewHandler(&configuration.EnvFileProvider{})
		if settings, err = configHandler.Load(flags.configPath); err != nil {
			return settings, err
		}
		slog.Debug("Loaded configuration", "path", flags.configPath)
	}

	if cmd.Flags().Changed("base") {
		settings.BasePath = flags.base
	}

	if cmd.Flags().Changed("schema") {
		settings.SchemaPath = flags.schemaPath
	}

	if flags.keepExisting {
		settings.Options.OnExisting = materialize.PolicyKeep
	}

	return settings, nil
}

func resolveSchema(path string) (*schema.Directory, error) {
	if path == "" {
		return schema.DefaultLayout(), nil
	}

	root, err := loader.NewHandler(&syscalls.OS{}).Load(path)
	if err != nil {
		return nil, err
	}

	return root, nil
}

func runGenerate(cmd *cobra.Command, flags *rootFlags, stdout io.Writer) error {
	settings, err := resolveSettings(cmd, flags)
	if err != nil {
		return err
	}

	root, err := resolveSchema(settings.SchemaPath)
	if err != nil {
		return err
	}

	dirs, files := root.Count()

	slog.Debug("Resolved schema",
		"schema", settings.SchemaPath,
		"dirs", dirs,
		"files", files,
		"digest", schema.Digest(root),
		"base", settings.BasePath,
		"existing", settings.Options.OnExisting,
	)

	if flags.dryRun {
		report, tree, err := preview.DryRun(settings.BasePath, root, settings.Options)
		if err != nil {
			return err
		}

		if flags.jsonOutput {
			return printJSON(stdout, report)
		}

		fmt.Fprintln(stdout, tree)
		fmt.Fprintln(stdout, report.Summary())

		return nil
	}

	fsHandler := materialize.NewHandler(&syscalls.OS{}, &syscalls.Unix{}, settings.Options)

	report, err := fsHandler.Materialize(settings.BasePath, root)
	if err != nil {
		slog.Warn("Structure is incomplete.",
			"summary", report.Summary(),
		)

		return err
	}

	slog.Debug("Materialized", "summary", report.Summary())

	if flags.jsonOutput {
		return printJSON(stdout, report)
	}

	fmt.Fprintln(stdout, successMessage)

	return nil
}

func printJSON(w io.Writer, report *materialize.Report) error {
	data, err := report.JSON()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, string(data))

	return nil
}
