package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vigil/internal/backend/c99"
)

var filenameCmd = &cobra.Command{
	Use:   "filename",
	Short: "Print the header file name for a prefix without generating",
	Long: `Print the base name of the header that gen would write for the given
prefix. Performs no I/O; build systems use it to declare the output
file before running generation.`,
	Args: cobra.NoArgs,
	RunE: runFilename,
}

func init() {
	filenameCmd.Flags().String("prefix", "", "namespace prefix for generated symbols")
}

func runFilename(cmd *cobra.Command, args []string) error {
	prefixFlag, err := cmd.Flags().GetString("prefix")
	if err != nil {
		return err
	}
	p := c99.NoPrefix()
	if prefixFlag != "" {
		p = c99.WithPrefix(prefixFlag)
	}
	fmt.Fprintln(cmd.OutOrStdout(), c99.HeaderFileName(p))
	return nil
}
