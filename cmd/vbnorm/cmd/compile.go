package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/metaphox/vbnorm/compiler"
)

var outDir string

var compileCmd = &cobra.Command{
	Use:   "compile <file>...",
	Short: "Compile source files to the legacy dialect",
	Long: `Compile each file and write the result next to it, or into --out.
The output name is the input name with its extension replaced by
generate.output_extension from the config file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	sources := make([]compiler.Source, 0, len(args))
	for _, path := range args {
		src, err := readSource(path)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}

	results, err := compiler.CompileAll(cmd.Context(), sources, compilerOptions())
	if err != nil {
		return err
	}

	dests, err := destinations(results, outDir, cfg.Generate.OutputExtension)
	if err != nil {
		return err
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	for i, res := range results {
		dest := dests[i]
		if err := os.WriteFile(dest, []byte(res.Output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		printSummary(cmd.OutOrStdout(), res, dest)
	}
	return nil
}

// destinations maps every result to its output path. Nothing is written when
// an output would replace an input or another output of the same run.
func destinations(results []*compiler.Result, dir, ext string) ([]string, error) {
	inputs := make(map[string]bool, len(results))
	for _, res := range results {
		inputs[filepath.Clean(res.Name)] = true
	}

	dests := make([]string, len(results))
	claimed := make(map[string]string, len(results))
	for i, res := range results {
		dest := filepath.Clean(outputPath(res.Name, dir, ext))
		if inputs[dest] {
			return nil, fmt.Errorf("%s: output %s would overwrite an input, set --out or output_extension", res.Name, dest)
		}
		if prev, ok := claimed[dest]; ok {
			return nil, fmt.Errorf("%s and %s both write %s", prev, res.Name, dest)
		}
		claimed[dest] = res.Name
		dests[i] = dest
	}
	return dests, nil
}

func printSummary(w io.Writer, res *compiler.Result, dest string) {
	status := okStyle.Render("ok")
	if res.Truncated() {
		status = warnStyle.Render("truncated")
	}
	fmt.Fprintf(w, "%s %s %s %s\n",
		status,
		pathStyle.Render(res.Name),
		mutedStyle.Render("→"),
		pathStyle.Render(dest))
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("   %d tokens, %d statements, %d/%d bytes lexed, %d tokens unparsed",
		len(res.Tokens), len(res.Statements), res.LexedBytes, res.InputBytes, res.RemainingTokens)))
}
