package spec

import (
	"fmt"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// TOML interchange form. The file mirrors the Specification shape with
// scalar tags spelled out as strings:
//
//	[[observers]]
//	name = "temp"
//	type = "float64"
//
//	[[triggers]]
//	name = "alarm"
//	args = ["bool", "int32"]
//
//	[[extern.vars]]   / [[extern.arrays]] / [[extern.funs]]
type tomlSpec struct {
	Observers []tomlTyped    `toml:"observers"`
	Triggers  []tomlCallable `toml:"triggers"`
	Extern    struct {
		Vars   []tomlTyped `toml:"vars"`
		Arrays []tomlArray `toml:"arrays"`
		Funs   []tomlFun   `toml:"funs"`
	} `toml:"extern"`
}

type tomlTyped struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

type tomlCallable struct {
	Name string   `toml:"name"`
	Args []string `toml:"args"`
}

type tomlArray struct {
	Name string `toml:"name"`
	Elem string `toml:"elem"`
	Size int64  `toml:"size"`
}

type tomlFun struct {
	Name   string   `toml:"name"`
	Return string   `toml:"return"`
	Args   []string `toml:"args"`
}

// LoadFile reads a Specification interchange file, dispatching on the
// extension: .toml for the human-readable form, .mpk for the binary
// form emitted by the front-end.
func LoadFile(path string) (*Specification, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return LoadTOML(path)
	case ".mpk":
		return ReadBinary(path)
	default:
		return nil, fmt.Errorf("%s: unsupported spec format %q (expected .toml or .mpk)", path, ext)
	}
}

// LoadTOML parses the TOML interchange form of a Specification.
func LoadTOML(path string) (*Specification, error) {
	var raw tomlSpec
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	sp, err := raw.resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sp, nil
}

func (raw *tomlSpec) resolve() (*Specification, error) {
	sp := &Specification{}
	for _, o := range raw.Observers {
		ty, err := ParseScalar(o.Type)
		if err != nil {
			return nil, fmt.Errorf("observer %q: %w", o.Name, err)
		}
		sp.Observers = append(sp.Observers, Observer{Name: o.Name, Type: ty})
	}
	for _, t := range raw.Triggers {
		args, err := resolveArgs(t.Args)
		if err != nil {
			return nil, fmt.Errorf("trigger %q: %w", t.Name, err)
		}
		sp.Triggers = append(sp.Triggers, Trigger{Name: t.Name, Args: args})
	}
	for _, v := range raw.Extern.Vars {
		ty, err := ParseScalar(v.Type)
		if err != nil {
			return nil, fmt.Errorf("extern var %q: %w", v.Name, err)
		}
		sp.ExternVars = append(sp.ExternVars, ExternVar{Name: v.Name, Type: ty})
	}
	for _, a := range raw.Extern.Arrays {
		elem, err := ParseScalar(a.Elem)
		if err != nil {
			return nil, fmt.Errorf("extern array %q: %w", a.Name, err)
		}
		if a.Size <= 0 {
			return nil, fmt.Errorf("extern array %q: size must be positive, got %d", a.Name, a.Size)
		}
		size, err := safecast.Conv[uint32](a.Size)
		if err != nil {
			return nil, fmt.Errorf("extern array %q: %w", a.Name, err)
		}
		sp.ExternArrays = append(sp.ExternArrays, ExternArray{Name: a.Name, Elem: elem, Size: size})
	}
	for _, f := range raw.Extern.Funs {
		ret, err := ParseScalar(f.Return)
		if err != nil {
			return nil, fmt.Errorf("extern fun %q: %w", f.Name, err)
		}
		args, err := resolveArgs(f.Args)
		if err != nil {
			return nil, fmt.Errorf("extern fun %q: %w", f.Name, err)
		}
		sp.ExternFuns = append(sp.ExternFuns, ExternFun{Name: f.Name, Return: ret, Args: args})
	}
	return sp, nil
}

func resolveArgs(tags []string) ([]Signal, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	args := make([]Signal, 0, len(tags))
	for i, tag := range tags {
		ty, err := ParseScalar(tag)
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", i, err)
		}
		args = append(args, Signal{Type: ty})
	}
	return args, nil
}
