package spec

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when binaryPayload format changes.
const binarySchemaVersion uint16 = 1

// binaryPayload wraps a Specification for the .mpk interchange form the
// front-end hands across process boundaries.
type binaryPayload struct {
	Schema uint16        `msgpack:"schema"`
	Spec   Specification `msgpack:"spec"`
}

// WriteBinary serializes a Specification to the binary interchange form.
func WriteBinary(path string, sp *Specification) error {
	data, err := msgpack.Marshal(&binaryPayload{Schema: binarySchemaVersion, Spec: *sp})
	if err != nil {
		return fmt.Errorf("%s: failed to encode spec: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("%s: failed to write spec: %w", path, err)
	}
	return nil
}

// ReadBinary deserializes a Specification from the binary interchange form.
func ReadBinary(path string) (*Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read spec: %w", path, err)
	}
	var payload binaryPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%s: failed to decode spec: %w", path, err)
	}
	if payload.Schema != binarySchemaVersion {
		return nil, fmt.Errorf("%s: unsupported spec schema %d (expected %d)", path, payload.Schema, binarySchemaVersion)
	}
	return &payload.Spec, nil
}
