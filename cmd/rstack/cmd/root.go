// Package cmd is the cobra command tree of the rstack CLI host,
// shaped on the teacher's cmd/dwscript/cmd package: a package-level
// rootCmd plus one file per subcommand, each registering itself via
// init().
package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var (
	// Version is set by -ldflags at release build time.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rstack",
	Short: "rstack concatenative language interpreter",
	Long: `rstack runs the small concatenative, stack-based language built
on exact rational arithmetic, implicit vector iteration, and a
reference-counted word dictionary.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// rcConfig is the optional ~/.rstackrc.yaml a user may keep alongside
// their scripts: CLI-level convenience, outside the kernel's §6
// boundary, so it is free to touch the filesystem.
type rcConfig struct {
	Trace       bool   `yaml:"trace"`
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

const defaultPrompt = "> "

func loadRC() rcConfig {
	cfg := rcConfig{Prompt: defaultPrompt}
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(home + "/.rstackrc.yaml")
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return rcConfig{Prompt: defaultPrompt}
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	return cfg
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
