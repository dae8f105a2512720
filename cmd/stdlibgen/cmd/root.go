// Package cmd contains the CLI commands for stdlibgen.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jpequegn/stdlibgen/internal/config"
	"github.com/jpequegn/stdlibgen/internal/detector"
	"github.com/jpequegn/stdlibgen/internal/generator"
	"github.com/jpequegn/stdlibgen/internal/models"
	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

// argNames are the positional arguments of the root command, in order.
var argNames = []string{"template_file", "module_name", "module_file", "output_file"}

// options holds the root command flags.
type options struct {
	configPath string
	verbose    bool
	dryRun     bool
}

// newRootCmd builds the root command and its subcommands.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "stdlibgen <template_file> <module_name> <module_file> <output_file>",
		Short: "Embed a text module into a source file template",
		Long: `stdlibgen reads a template and a module file, quotes every module line
as a string literal and writes the template with two placeholders replaced:

  {module_name}  the module name argument, inserted verbatim
  {module_text}  the quoted module lines, one per line

Literal braces in the template are written as {{ and }}.`,
		Version:       Version,
		Args:          positionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "Read options from a .toml or .yaml file")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the generated text instead of writing output_file")

	rootCmd.AddCommand(newTemplateCmd())
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	return rootCmd
}

// Execute runs the root command and reports any error on stderr.
// This is called by main.main().
func Execute() error {
	return execute(newRootCmd())
}

func execute(rootCmd *cobra.Command) error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "stdlibgen: %v\n", err)
		return err
	}
	return nil
}

// positionalArgs requires exactly the four named arguments and names the
// first one that is missing.
func positionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) < len(argNames) {
		return &generator.ArgumentError{Arg: argNames[len(args)], Err: generator.ErrMissingArgument}
	}
	if len(args) > len(argNames) {
		return fmt.Errorf("accepts %d arg(s), received %d", len(argNames), len(args))
	}
	return nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	// Flags set on the command line win over the config file
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = opts.dryRun
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	job := &models.Job{
		TemplatePath: args[0],
		ModuleName:   args[1],
		ModulePath:   args[2],
		OutputPath:   args[3],
	}
	logger.Debug("generating module",
		"template", job.TemplatePath, "module", job.ModuleName,
		"source", job.ModulePath, "output", job.OutputPath, "dryRun", cfg.DryRun)

	if target := detector.NewRegistry().DetectPrimary(job.OutputPath); target != nil {
		logger.Debug("detected output language", "language", target.Language, "confidence", target.Confidence)
	}

	gen := generator.NewGenerator(logger)

	if cfg.DryRun {
		content, err := gen.Render(job)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(content)
		return err
	}

	return gen.Generate(job)
}

// newLogger returns a text logger on w. Only warnings are shown unless verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
