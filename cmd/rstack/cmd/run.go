package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rstack-lang/rstack/pkg/kernel"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute an rstack program",
	Long: `Execute an rstack program from a file or inline source, printing
any output followed by the final data stack.

Examples:
  rstack run program.rst
  rstack run -e "3 4 + ."`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "execute inline source instead of reading from a file")
}

func readSource(args []string) (source, label string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline source")
}

func runScript(_ *cobra.Command, args []string) error {
	source, label, err := readSource(args)
	if err != nil {
		return err
	}

	var opts []kernel.Option
	rc := loadRC()
	if verbose || rc.Trace {
		opts = append(opts, kernel.WithTrace(stderrTracer{}))
	}
	k := kernel.New(opts...)

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s\n", label)
	}

	result := k.Execute(source)
	fmt.Print(result.Output)
	fmt.Printf("stack: [ %s ]\n", strings.Join(k.InspectStack(), " "))

	if result.Status != "OK" {
		return fmt.Errorf("%s", result.Status)
	}
	return nil
}

type stderrTracer struct{}

func (stderrTracer) WriteString(s string) (int, error) {
	return fmt.Fprint(os.Stderr, s)
}
