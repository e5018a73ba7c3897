package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vigil/internal/backend/c99"
	"vigil/internal/spec"
)

func writeSpec(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const tinySpec = `
[[observers]]
name = "temp"
type = "float64"
`

func TestRunSingleRequest(t *testing.T) {
	dir := t.TempDir()
	specPath := writeSpec(t, dir, "monitor.toml", tinySpec)

	res, err := Run(Request{SpecPath: specPath, OutDir: dir, Prefix: c99.WithPrefix("sys")})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if filepath.Base(res.HeaderPath) != "sys_monitor.h" {
		t.Errorf("header path = %q", res.HeaderPath)
	}
	data, err := os.ReadFile(res.HeaderPath)
	if err != nil {
		t.Fatalf("reading header: %v", err)
	}
	if !strings.Contains(string(data), "extern double sys_temp;\n") {
		t.Errorf("header missing observer line:\n%s", data)
	}
}

func TestRunAllDistinctTargets(t *testing.T) {
	dir := t.TempDir()
	a := writeSpec(t, dir, "a.toml", tinySpec)
	b := writeSpec(t, dir, "b.toml", tinySpec)

	results, err := RunAll(context.Background(), []Request{
		{SpecPath: a, OutDir: dir, Prefix: c99.WithPrefix("a")},
		{SpecPath: b, OutDir: dir, Prefix: c99.WithPrefix("b")},
	})
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].SpecPath != a || results[1].SpecPath != b {
		t.Errorf("results not in request order: %+v", results)
	}
	for _, res := range results {
		if _, err := os.Stat(res.HeaderPath); err != nil {
			t.Errorf("missing header %q: %v", res.HeaderPath, err)
		}
	}
}

func TestRunAllRejectsClashingTargets(t *testing.T) {
	dir := t.TempDir()
	a := writeSpec(t, dir, "a.toml", tinySpec)
	b := writeSpec(t, dir, "b.toml", tinySpec)

	_, err := RunAll(context.Background(), []Request{
		{SpecPath: a, OutDir: dir, Prefix: c99.NoPrefix()},
		{SpecPath: b, OutDir: dir, Prefix: c99.NoPrefix()},
	})
	if err == nil {
		t.Fatal("expected error for clashing output paths")
	}
	if !strings.Contains(err.Error(), "monitor.h") {
		t.Errorf("error should name the clashing target: %v", err)
	}
}

func TestRunMissingSpecFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(Request{SpecPath: filepath.Join(dir, "absent.toml"), OutDir: dir, Prefix: c99.NoPrefix()})
	if err == nil {
		t.Fatal("expected error for missing spec file")
	}
}

func TestRequestHeaderPathAgreesWithRun(t *testing.T) {
	dir := t.TempDir()
	specPath := writeSpec(t, dir, "monitor.toml", tinySpec)
	for _, prefix := range []c99.Prefix{c99.NoPrefix(), c99.WithPrefix("sys")} {
		req := Request{SpecPath: specPath, OutDir: dir, Prefix: prefix}
		res, err := Run(req)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if res.HeaderPath != req.HeaderPath() {
			t.Errorf("HeaderPath() = %q, Run wrote %q", req.HeaderPath(), res.HeaderPath)
		}
	}
}

// Sanity check that a loaded spec renders identically to the same spec
// built in memory, so the interchange form adds no drift.
func TestLoadedSpecMatchesInMemory(t *testing.T) {
	dir := t.TempDir()
	specPath := writeSpec(t, dir, "monitor.toml", tinySpec)
	loaded, err := spec.LoadFile(specPath)
	if err != nil {
		t.Fatal(err)
	}
	inMemory := &spec.Specification{
		Observers: []spec.Observer{{Name: "temp", Type: spec.ScalarFloat64}},
	}
	if c99.EmitHeader(loaded, c99.NoPrefix()) != c99.EmitHeader(inMemory, c99.NoPrefix()) {
		t.Error("loaded spec renders differently from in-memory spec")
	}
}
