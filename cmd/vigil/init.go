package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"vigil/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new vigil project",
	Long: `Initialize a new vigil project by creating a project manifest (vigil.toml)
and an example monitor specification (monitor.toml). If [path|name] is
omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Determine project name from directory basename
	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "vigil-project"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(defaultManifest(name)), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	specPath := filepath.Join(target, "monitor.toml")
	createdSpec := false
	if _, err := os.Stat(specPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(specPath, []byte(exampleSpec), os.FileMode(0o600)); err != nil {
			return fmt.Errorf("failed to write example spec: %w", err)
		}
		createdSpec = true
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "created %s\n", manifestPath)
	if createdSpec {
		fmt.Fprintf(out, "created %s\n", specPath)
	}
	return nil
}

func defaultManifest(name string) string {
	return fmt.Sprintf(`[package]
name = %q

[generate]
# prefix = %q
# out-dir = "include"
`, name, name)
}

const exampleSpec = `# Monitor interface specification.

[[observers]]
name = "temperature"
type = "float64"

[[triggers]]
name = "overheat"
args = ["bool", "int32"]

[[extern.vars]]
name = "sensor"
type = "int32"
`
