package c99

import (
	"fmt"
	"strings"

	"vigil/internal/spec"
)

// Per-declaration line rendering. Section ordering, banners, and
// spacing are the assembler's business (emit.go); every function here
// returns exactly one line without a trailing newline.
//
// Trigger prototypes separate argument types with ", " while extern
// function prototypes use a bare ",". Downstream tooling diffs
// generated headers byte-for-byte against the historical output, so
// the asymmetry is kept as is.

func renderObserver(o spec.Observer, prefix string) string {
	return fmt.Sprintf("extern %s %s%s;", cTypeName(o.Type), prefix, o.Name)
}

func renderTrigger(t spec.Trigger, prefix string) string {
	return fmt.Sprintf("void %s%s(%s);", prefix, t.Name, joinArgTypes(t.Args, ", "))
}

func renderExternVar(v spec.ExternVar) string {
	return fmt.Sprintf("extern %s %s;", cTypeName(v.Type), v.Name)
}

func renderExternArray(a spec.ExternArray) string {
	return fmt.Sprintf("extern %s %s[%d];", cTypeName(a.Elem), a.Name, a.Size)
}

func renderExternFun(f spec.ExternFun) string {
	return fmt.Sprintf("%s %s(%s);", cTypeName(f.Return), f.Name, joinArgTypes(f.Args, ","))
}

func renderStep(prefix string) string {
	return fmt.Sprintf("void %sstep(void);", prefix)
}

func joinArgTypes(args []spec.Signal, sep string) string {
	if len(args) == 0 {
		return ""
	}
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = cTypeName(a.Type)
	}
	return strings.Join(names, sep)
}
