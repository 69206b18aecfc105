package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/rstack-lang/rstack/internal/lexer"
)

var (
	lexQuery string
	lexJSON  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize rstack source and print the resulting tokens",
	Long: `Tokenize (lex) rstack source and print the resulting tokens, a
debugging aid mirroring the teacher's own lex command.

Examples:
  rstack lex program.rst
  rstack lex -e "3 4 +" --json
  rstack lex -e "3 4 +" --json --query "0.kind"`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexJSON, "json", false, "emit tokens as a JSON array")
	lexCmd.Flags().StringVar(&lexQuery, "query", "", "gjson path to extract one field from the --json output")
}

type lexedToken struct {
	Kind    string `json:"kind"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func lexScript(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	toks, err := lexer.Tokenize(source, lexer.WithPreserveComments(true))
	if err != nil {
		return err
	}

	if lexJSON || lexQuery != "" {
		return printTokensJSON(toks)
	}

	for _, t := range toks {
		fmt.Printf("[%-8s] %q @%d:%d\n", t.Kind, t.Literal, t.Line, t.Column)
	}
	return nil
}

func printTokensJSON(toks []lexer.Token) error {
	out := make([]lexedToken, len(toks))
	for i, t := range toks {
		out[i] = lexedToken{Kind: t.Kind.String(), Literal: t.Literal, Line: t.Line, Column: t.Column}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}

	if lexQuery != "" {
		result := gjson.GetBytes(data, lexQuery)
		fmt.Println(result.String())
		return nil
	}

	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
