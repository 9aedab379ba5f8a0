package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metaphox/vbnorm/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Print the tokens of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	lx := lexer.New(src.Data)
	tokens := lx.Tokens()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(
		posColumn.Render("POS")+typeColumn.Render("TYPE")+"LITERAL"))
	for _, tok := range tokens {
		fmt.Fprintln(out,
			posColumn.Render(fmt.Sprintf("%d:%d", tok.Line, tok.Col))+
				typeColumn.Render(tok.Type.String())+
				tok.Literal)
	}
	if lx.Offset() < len(src.Data) {
		fmt.Fprintln(out, warnStyle.Render(
			fmt.Sprintf("stopped at byte %d of %d", lx.Offset(), len(src.Data))))
	}
	return nil
}
