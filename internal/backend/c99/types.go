package c99

import (
	"fmt"

	"vigil/internal/spec"
)

// cTypeName maps a scalar onto its C99 declaration name. The switch is
// exhaustive over the closed scalar set; the mapping tests walk
// spec.All so a variant added upstream without a case here fails the
// suite instead of slipping through a default.
func cTypeName(s spec.Scalar) string {
	switch s {
	case spec.ScalarBool:
		return "bool"
	case spec.ScalarInt8:
		return "int8_t"
	case spec.ScalarInt16:
		return "int16_t"
	case spec.ScalarInt32:
		return "int32_t"
	case spec.ScalarInt64:
		return "int64_t"
	case spec.ScalarUint8:
		return "uint8_t"
	case spec.ScalarUint16:
		return "uint16_t"
	case spec.ScalarUint32:
		return "uint32_t"
	case spec.ScalarUint64:
		return "uint64_t"
	case spec.ScalarFloat32:
		return "float"
	case spec.ScalarFloat64:
		return "double"
	default:
		panic(fmt.Sprintf("unmapped scalar %s", s))
	}
}
