package core

import "fmt"

// TypeCode identifies the element type declared at offset 2 of an IDX header.
type TypeCode byte

// Type code constants from the classic IDX format.
const (
	TypeUint8   TypeCode = 0x08 // Unsigned byte.
	TypeInt8    TypeCode = 0x09 // Signed byte.
	TypeInt16   TypeCode = 0x0B // 16-bit signed integer.
	TypeInt32   TypeCode = 0x0C // 32-bit signed integer.
	TypeFloat32 TypeCode = 0x0D // IEEE 754 single precision.
	TypeFloat64 TypeCode = 0x0E // IEEE 754 double precision.
)

// elementWidths is the fixed table mapping each recognized type code to its
// element size in bytes. It is the single source of truth for the recognized
// set; codes absent from it are rejected.
var elementWidths = map[TypeCode]uint64{
	TypeUint8:   1,
	TypeInt8:    1,
	TypeInt16:   2,
	TypeInt32:   4,
	TypeFloat32: 4,
	TypeFloat64: 8,
}

// Width returns the element size in bytes for a recognized type code.
// Unrecognized codes return an UnknownTypeCodeError carrying the byte.
func (c TypeCode) Width() (uint64, error) {
	width, ok := elementWidths[c]
	if !ok {
		return 0, &UnknownTypeCodeError{Code: byte(c)}
	}
	return width, nil
}

// Valid reports whether the type code is in the recognized set.
func (c TypeCode) Valid() bool {
	_, ok := elementWidths[c]
	return ok
}

// String returns a short name for the type code, for example "uint8".
func (c TypeCode) String() string {
	switch c {
	case TypeUint8:
		return "uint8"
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	default:
		return fmt.Sprintf("TypeCode(0x%02x)", byte(c))
	}
}
