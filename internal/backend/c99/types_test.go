package c99

import (
	"testing"

	"vigil/internal/spec"
)

func TestCTypeNameCoversEveryScalar(t *testing.T) {
	want := map[spec.Scalar]string{
		spec.ScalarBool:    "bool",
		spec.ScalarInt8:    "int8_t",
		spec.ScalarInt16:   "int16_t",
		spec.ScalarInt32:   "int32_t",
		spec.ScalarInt64:   "int64_t",
		spec.ScalarUint8:   "uint8_t",
		spec.ScalarUint16:  "uint16_t",
		spec.ScalarUint32:  "uint32_t",
		spec.ScalarUint64:  "uint64_t",
		spec.ScalarFloat32: "float",
		spec.ScalarFloat64: "double",
	}
	all := spec.All()
	if len(want) != len(all) {
		t.Fatalf("mapping table has %d entries, scalar set has %d; update cTypeName and this table together", len(want), len(all))
	}
	for _, s := range all {
		got := cTypeName(s)
		if got != want[s] {
			t.Errorf("cTypeName(%s) = %q, want %q", s, got, want[s])
		}
	}
}

func TestCTypeNameInjective(t *testing.T) {
	seen := make(map[string]spec.Scalar)
	for _, s := range spec.All() {
		name := cTypeName(s)
		if name == "" {
			t.Fatalf("cTypeName(%s) is empty", s)
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("cTypeName maps both %s and %s to %q", prev, s, name)
		}
		seen[name] = s
	}
}
