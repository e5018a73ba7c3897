// Package project locates and parses the vigil.toml project manifest,
// which supplies defaults the gen command flags can override.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name probed for in the working directory.
const ManifestName = "vigil.toml"

// Manifest is a parsed vigil.toml plus the directory it was found in.
type Manifest struct {
	Root   string
	Config Config
}

// Config mirrors the manifest schema.
type Config struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Generate struct {
		Prefix string `toml:"prefix"`
		OutDir string `toml:"out-dir"`
	} `toml:"generate"`
}

// Load probes dir for vigil.toml. The second return reports whether a
// manifest was found; a missing manifest is not an error.
func Load(dir string) (Manifest, bool, error) {
	path := filepath.Join(dir, ManifestName)
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Manifest{}, false, nil
		}
		return Manifest{}, false, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return Manifest{Root: abs, Config: cfg}, true, nil
}
