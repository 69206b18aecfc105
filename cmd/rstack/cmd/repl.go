package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rstack-lang/rstack/pkg/kernel"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive rstack session",
	Long: `Read lines from standard input, executing each against one
persistent Kernel, printing output and the resulting stack after
every line.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg := loadRC()

	var kopts []kernel.Option
	if verbose || cfg.Trace {
		kopts = append(kopts, kernel.WithTrace(stderrTracer{}))
	}
	k := kernel.New(kopts...)

	history := openHistory(cfg.HistoryFile)
	if history != nil {
		defer history.Close()
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprintln(os.Stderr, "rstack repl — EOF to quit (blank lines are ignored)")

	for {
		fmt.Fprint(os.Stderr, cfg.Prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if history != nil {
			fmt.Fprintln(history, line)
		}

		result := k.Execute(line)
		fmt.Print(result.Output)
		fmt.Printf("stack: [ %s ]\n", strings.Join(k.InspectStack(), " "))
		if result.Status != "OK" {
			fmt.Fprintln(os.Stderr, result.Status)
		}
	}
	return scanner.Err()
}

// openHistory appends executed lines to path, the way a shell history
// file grows; a missing or empty path disables history entirely.
func openHistory(path string) *os.File {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rstack: history file %s: %v\n", path, err)
		return nil
	}
	return f
}
