package core

import (
	"encoding/binary"

	"github.com/scigolib/idx/internal/utils"
)

// IDX header geometry. The fixed prefix is two reserved zero bytes, one type
// code byte and one dimension count byte; each dimension size is a big-endian
// unsigned 32-bit value immediately after the prefix.
const (
	PrefixLength    = 4
	DimensionLength = 4
)

// Header is the parsed IDX header: the type code and the dimension-size
// table, outermost dimension first. It exists only as a transient value
// during one validation or inspection call and never owns payload bytes.
type Header struct {
	Type TypeCode
	Dims []uint32
}

// ParseHeader extracts the fixed prefix and the dimension-size table from
// buf. It fails with ErrTruncated if buf cannot hold the prefix or the
// declared table, and with ErrBadPadding if either reserved byte is nonzero.
// The type code is not resolved here; unknown codes are caught by Width.
func ParseHeader(buf []byte) (*Header, error) {
	if len(buf) < PrefixLength {
		return nil, ErrTruncated
	}

	if buf[0] != 0 || buf[1] != 0 {
		return nil, ErrBadPadding
	}

	h := &Header{Type: TypeCode(buf[2])}
	rank := int(buf[3])

	headerLen, err := headerLength(rank)
	if err != nil {
		return nil, ErrOverflow
	}
	if uint64(len(buf)) < headerLen {
		return nil, ErrTruncated
	}

	h.Dims = make([]uint32, rank)
	for i := range h.Dims {
		offset := PrefixLength + i*DimensionLength
		h.Dims[i] = binary.BigEndian.Uint32(buf[offset : offset+DimensionLength])
	}

	return h, nil
}

// Rank returns the number of declared dimensions (0 for a scalar).
func (h *Header) Rank() int {
	return len(h.Dims)
}

// Length returns the header length in bytes: the fixed prefix plus the
// dimension-size table.
func (h *Header) Length() uint64 {
	// Rank is at most 255, so this never overflows; headerLength keeps the
	// checked-arithmetic discipline of the payload computations anyway.
	n, _ := headerLength(h.Rank())
	return n
}

// ElementCount returns the product of all dimension sizes, overflow-checked
// at every step. A rank-0 header yields 1 (a single scalar element).
func (h *Header) ElementCount() (uint64, error) {
	count, err := utils.DimensionsProduct(h.Dims)
	if err != nil {
		return 0, ErrOverflow
	}
	return count, nil
}

// headerLength computes 4 + rank*4 with the same checked arithmetic used for
// the payload bounds.
func headerLength(rank int) (uint64, error) {
	tableLen, err := utils.SafeMultiply(uint64(rank), DimensionLength)
	if err != nil {
		return 0, err
	}
	return utils.SafeAdd(PrefixLength, tableLen)
}
