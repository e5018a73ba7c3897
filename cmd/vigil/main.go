// Package main implements the vigil CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vigil/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "vigil",
	Short: "Vigil monitor interface generator",
	Long:  `Vigil synthesizes C99 declaration headers from typed monitor interface specifications`,
}

// main registers subcommands and persistent flags, then executes the
// root command. A command error exits with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(filenameCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
}
