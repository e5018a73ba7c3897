// Package spec defines the typed interface description of a reactive
// monitor: the signals it exposes, the callbacks it raises, and the
// foreign symbols it expects the embedding code to define. The
// description is produced by an upstream front-end and consumed
// read-only by the C99 backend.
package spec

import "fmt"

// Scalar enumerates the closed set of scalar types a monitor interface
// can carry. The set is fixed; every consumer switches exhaustively
// over it and the backend's mapping tests walk All to catch a variant
// added here without the mapping updated.
type Scalar uint8

const (
	ScalarBool Scalar = iota
	ScalarInt8
	ScalarInt16
	ScalarInt32
	ScalarInt64
	ScalarUint8
	ScalarUint16
	ScalarUint32
	ScalarUint64
	ScalarFloat32
	ScalarFloat64

	scalarCount
)

// All returns every Scalar variant in declaration order.
func All() []Scalar {
	out := make([]Scalar, 0, scalarCount)
	for s := Scalar(0); s < scalarCount; s++ {
		out = append(out, s)
	}
	return out
}

func (s Scalar) String() string {
	switch s {
	case ScalarBool:
		return "bool"
	case ScalarInt8:
		return "int8"
	case ScalarInt16:
		return "int16"
	case ScalarInt32:
		return "int32"
	case ScalarInt64:
		return "int64"
	case ScalarUint8:
		return "uint8"
	case ScalarUint16:
		return "uint16"
	case ScalarUint32:
		return "uint32"
	case ScalarUint64:
		return "uint64"
	case ScalarFloat32:
		return "float32"
	case ScalarFloat64:
		return "float64"
	default:
		return fmt.Sprintf("Scalar(%d)", uint8(s))
	}
}

// ParseScalar resolves a scalar tag as written in interchange files.
func ParseScalar(tag string) (Scalar, error) {
	for s := Scalar(0); s < scalarCount; s++ {
		if s.String() == tag {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown scalar type %q (valid: bool, int8..int64, uint8..uint64, float32, float64)", tag)
}

// Signal is a type-erased value slot produced by the front-end. The
// backend only consults its scalar type; the value itself lives in the
// generated step body, which is out of this module's scope.
type Signal struct {
	Type Scalar `msgpack:"type"`
}

// Observer is a named signal the monitor exposes for inspection after
// each evaluation step.
type Observer struct {
	Name string `msgpack:"name"`
	Type Scalar `msgpack:"type"`
}

// Trigger is a callback the monitor raises; the embedding code must
// define it with the listed argument types.
type Trigger struct {
	Name string   `msgpack:"name"`
	Args []Signal `msgpack:"args"`
}

// ExternVar is a scalar symbol owned and defined by the embedding code.
type ExternVar struct {
	Name string `msgpack:"name"`
	Type Scalar `msgpack:"type"`
}

// ExternArray is a fixed-size array symbol owned by the embedding code.
type ExternArray struct {
	Name string `msgpack:"name"`
	Elem Scalar `msgpack:"elem"`
	Size uint32 `msgpack:"size"`
}

// ExternFun is a function symbol owned by the embedding code.
type ExternFun struct {
	Name   string   `msgpack:"name"`
	Return Scalar   `msgpack:"return"`
	Args   []Signal `msgpack:"args"`
}

// Specification is the aggregate interface description. Extern arrays
// and functions may repeat by name (the same foreign symbol referenced
// from several expressions); the backend collapses those before
// rendering. Observer and trigger names are assumed unique by the
// front-end.
type Specification struct {
	Observers    []Observer    `msgpack:"observers"`
	Triggers     []Trigger     `msgpack:"triggers"`
	ExternVars   []ExternVar   `msgpack:"extern_vars"`
	ExternArrays []ExternArray `msgpack:"extern_arrays"`
	ExternFuns   []ExternFun   `msgpack:"extern_funs"`
}
