package main

import (
	"testing"

	"vigil/internal/backend/c99"
)

func TestGenPrefixSingleSpec(t *testing.T) {
	if got := genPrefix("monitor.toml", "", false); got.Resolve() != "" {
		t.Errorf("no-flag prefix = %q, want empty", got.Resolve())
	}
	if got := genPrefix("monitor.toml", "sys", false); got.Resolve() != "sys_" {
		t.Errorf("flag prefix = %q, want sys_", got.Resolve())
	}
}

func TestGenPrefixBatchUsesFileStem(t *testing.T) {
	got := genPrefix("specs/engine.toml", "", true)
	if got.Resolve() != "engine_" {
		t.Errorf("batch prefix = %q, want engine_", got.Resolve())
	}
	if c99.HeaderFileName(got) != "engine_monitor.h" {
		t.Errorf("batch header = %q, want engine_monitor.h", c99.HeaderFileName(got))
	}
}
