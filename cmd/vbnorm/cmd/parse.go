package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/metaphox/vbnorm/compiler"
)

var transform bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Dump the statement tree of a source file as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&transform, "transform", false, "dump the tree after the transformer ran")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}
	res, err := compiler.Compile(src.Data, compilerOptions())
	if err != nil {
		return err
	}

	stmts := res.Statements
	if transform {
		stmts = res.Transformed
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(stmts); err != nil {
		return fmt.Errorf("failed to encode statements: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if res.RemainingTokens > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(
			fmt.Sprintf("%d tokens not parsed", res.RemainingTokens)))
	}
	return nil
}
