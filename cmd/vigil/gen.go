package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vigil/internal/backend/c99"
	"vigil/internal/pipeline"
	"vigil/internal/project"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags] <spec>...",
	Short: "Generate C99 monitor headers from specification files",
	Long: `Generate a C99 declaration header for each specification file (.toml or
.mpk). With a single spec the prefix comes from --prefix, then the
vigil.toml manifest, then none. With multiple specs each header is
prefixed with the spec file's base name so the outputs do not collide.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().String("out-dir", "", "directory for generated headers (default: manifest out-dir or .)")
	genCmd.Flags().String("prefix", "", "namespace prefix for generated symbols")
}

func runGen(cmd *cobra.Command, args []string) error {
	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return err
	}
	prefixFlag, err := cmd.Flags().GetString("prefix")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	if len(args) > 1 && prefixFlag != "" {
		return fmt.Errorf("--prefix applies to a single spec; %d specs given", len(args))
	}

	manifest, manifestFound, err := project.Load(".")
	if err != nil {
		return err
	}
	if outDir == "" {
		if manifestFound && manifest.Config.Generate.OutDir != "" {
			outDir = manifest.Config.Generate.OutDir
		} else {
			outDir = "."
		}
	}
	if prefixFlag == "" && manifestFound {
		prefixFlag = manifest.Config.Generate.Prefix
	}

	reqs := make([]pipeline.Request, 0, len(args))
	for _, specPath := range args {
		reqs = append(reqs, pipeline.Request{
			SpecPath: specPath,
			OutDir:   outDir,
			Prefix:   genPrefix(specPath, prefixFlag, len(args) > 1),
		})
	}

	results, err := pipeline.RunAll(cmd.Context(), reqs)
	if err != nil {
		return err
	}
	if !quiet {
		report(cmd, results)
	}
	return nil
}

// genPrefix picks the namespace prefix for one spec. Batch runs derive
// it from the spec file stem so each header gets a distinct name.
func genPrefix(specPath, prefixFlag string, batch bool) c99.Prefix {
	if batch {
		stem := strings.TrimSuffix(filepath.Base(specPath), filepath.Ext(specPath))
		return c99.WithPrefix(stem)
	}
	if prefixFlag != "" {
		return c99.WithPrefix(prefixFlag)
	}
	return c99.NoPrefix()
}

func report(cmd *cobra.Command, results []pipeline.Result) {
	wrote := "wrote"
	if useColor(cmd) {
		wrote = color.GreenString(wrote)
	}
	for _, res := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (from %s)\n", wrote, res.HeaderPath, res.SpecPath)
	}
}
