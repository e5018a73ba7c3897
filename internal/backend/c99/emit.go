// Package c99 lowers a monitor interface Specification to a C99
// declaration header. The projection is lossless over the closed
// scalar set and deterministic: the same Specification, prefix, and
// directory always produce byte-identical output.
package c99

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vigil/internal/spec"
)

// section is one banner-titled block of declaration lines. The
// assembler emits every section in fixed order, banner included, even
// when the block has no lines, so headers for sparse specifications
// keep a stable shape.
type section struct {
	banner string
	lines  []string
}

// EmitHeader renders the full declaration header for sp. Pure: the
// result depends only on sp and prefix.
func EmitHeader(sp *spec.Specification, prefix Prefix) string {
	return assemble(buildSections(sp, prefix.Resolve()))
}

// Generate renders the header for sp and writes it to
// <dir>/<HeaderFileName(prefix)> in a single scoped write. It returns
// the path written. A failed write may leave a truncated artifact; the
// caller decides whether to remove and retry.
func Generate(sp *spec.Specification, dir string, prefix Prefix) (string, error) {
	path := filepath.Join(dir, HeaderFileName(prefix))
	text := EmitHeader(sp, prefix)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("failed to write header %q: %w", path, err)
	}
	return path, nil
}

func buildSections(sp *spec.Specification, resolved string) []section {
	observers := section{banner: "Observers"}
	for _, o := range sp.Observers {
		observers.lines = append(observers.lines, renderObserver(o, resolved))
	}

	triggers := section{banner: "Triggers"}
	for _, t := range sp.Triggers {
		triggers.lines = append(triggers.lines, renderTrigger(t, resolved))
	}

	vars := section{banner: "External variables"}
	for _, v := range sp.ExternVars {
		vars.lines = append(vars.lines, renderExternVar(v))
	}

	arrays := section{banner: "External arrays"}
	for _, a := range dedupeByName(sp.ExternArrays, func(a spec.ExternArray) string { return a.Name }) {
		arrays.lines = append(arrays.lines, renderExternArray(a))
	}

	funs := section{banner: "External functions"}
	for _, f := range dedupeByName(sp.ExternFuns, func(f spec.ExternFun) string { return f.Name }) {
		funs.lines = append(funs.lines, renderExternFun(f))
	}

	step := section{
		banner: "Step function",
		lines:  []string{renderStep(resolved)},
	}

	return []section{observers, triggers, vars, arrays, funs, step}
}

func assemble(sections []section) string {
	var buf strings.Builder
	buf.WriteString("#include <stdint.h>\n")
	buf.WriteString("#include <stdbool.h>\n")
	for _, s := range sections {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "/* %s */\n", s.banner)
		for _, line := range s.lines {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
