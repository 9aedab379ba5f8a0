package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/metaphox/vbnorm/compiler"
	"github.com/metaphox/vbnorm/config"
)

var (
	cfgFile      string
	verbose      bool
	preserveCase bool

	// Set by setup before any subcommand runs.
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vbnorm",
	Short: "vbnorm - normalise BASIC sources into the legacy dialect",
	Long: `vbnorm reads BASIC-family source files and writes the legacy dialect:
Return statements become an assignment to the function name followed by
Exit Function, and every construct is written in its canonical form.

Input the parser does not understand ends the output early; use
"vbnorm lex" and "vbnorm parse" to see how far a file got.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command line.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $VBNORM_CONFIG or ./vbnorm.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every compiler stage")
	rootCmd.PersistentFlags().BoolVar(&preserveCase, "preserve-case", false, "keep identifier case in generated output")
}

// setup loads the configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if preserveCase {
		cfg.Generate.PreserveCase = true
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func compilerOptions() compiler.Options {
	return compiler.Options{
		PreserveCase: cfg.Generate.PreserveCase,
		Workers:      cfg.Batch.Workers,
		Logger:       logger,
	}
}

func readSource(path string) (compiler.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return compiler.Source{}, fmt.Errorf("failed to read source: %w", err)
	}
	return compiler.Source{Name: path, Data: data}, nil
}

// outputPath replaces the extension of src with ext and places the file in
// dir, or next to src when dir is empty.
func outputPath(src, dir, ext string) string {
	base := filepath.Base(src)
	base = base[:len(base)-len(filepath.Ext(base))] + ext
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, base)
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
}
