// Package idx provides structural validation of IDX-format binary array
// buffers, the header layout used by classic array datasets such as MNIST.
// It answers whether a buffer's declared shape and element type exactly
// account for its length, with overflow-checked arithmetic over every
// header-derived quantity. It does not decode element values or convert
// payload byte order; callers that trust a validated buffer perform the
// actual decode themselves.
package idx

import "github.com/scigolib/idx/internal/core"

// TypeCode identifies the element type declared in an IDX header.
type TypeCode = core.TypeCode

// Recognized element type codes.
const (
	TypeUint8   = core.TypeUint8
	TypeInt8    = core.TypeInt8
	TypeInt16   = core.TypeInt16
	TypeInt32   = core.TypeInt32
	TypeFloat32 = core.TypeFloat32
	TypeFloat64 = core.TypeFloat64
)

// Header is a parsed IDX header: type code plus dimension-size table.
type Header = core.Header

// Validation failure categories. All are terminal; malformed input is
// rejected, never reinterpreted.
var (
	ErrTruncated  = core.ErrTruncated
	ErrBadPadding = core.ErrBadPadding
	ErrOverflow   = core.ErrOverflow
)

// OverAllocatedError reports a buffer longer than its header declares.
type OverAllocatedError = core.OverAllocatedError

// UnknownTypeCodeError reports a type code outside the recognized set.
type UnknownTypeCodeError = core.UnknownTypeCodeError

// Validate reports whether buf is a structurally well-formed IDX encoding:
// zero reserved bytes, a recognized type code, and a declared shape whose
// overflow-checked total size equals len(buf) exactly. It is a pure function
// of buf and is safe to call concurrently on independent buffers.
func Validate(buf []byte) error {
	return core.ValidateBuffer(buf)
}

// ParseHeader extracts the header from buf without checking the payload
// bounds. Most callers want Validate or Open instead; ParseHeader serves
// tooling that reports header contents for buffers that may be malformed
// beyond the dimension table.
func ParseHeader(buf []byte) (*Header, error) {
	return core.ParseHeader(buf)
}
