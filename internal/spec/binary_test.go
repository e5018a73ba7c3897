package spec

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestBinaryRoundTrip(t *testing.T) {
	sp := &Specification{
		Observers: []Observer{{Name: "temp", Type: ScalarFloat64}},
		Triggers:  []Trigger{{Name: "alarm", Args: []Signal{{Type: ScalarBool}}}},
		ExternFuns: []ExternFun{
			{Name: "f", Return: ScalarInt32, Args: []Signal{{Type: ScalarUint16}}},
		},
	}
	path := filepath.Join(t.TempDir(), "monitor.mpk")

	if err := WriteBinary(path, sp); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}
	got, err := ReadBinary(path)
	if err != nil {
		t.Fatalf("ReadBinary failed: %v", err)
	}
	if !reflect.DeepEqual(got, sp) {
		t.Errorf("round trip mismatch:\ngot:  %+v\nwant: %+v", got, sp)
	}
}

func TestBinarySchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitor.mpk")
	data, err := msgpack.Marshal(&binaryPayload{Schema: binarySchemaVersion + 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadBinary(path); err == nil {
		t.Fatal("expected error for schema mismatch")
	}
}

func TestReadBinaryMissingFile(t *testing.T) {
	if _, err := ReadBinary(filepath.Join(t.TempDir(), "absent.mpk")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
