package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		wantType TypeCode
		wantDims []uint32
		wantErr  error
	}{
		{
			name:    "empty buffer",
			buf:     nil,
			wantErr: ErrTruncated,
		},
		{
			name:    "two bytes cannot hold type code",
			buf:     []byte{0x00, 0x00},
			wantErr: ErrTruncated,
		},
		{
			name:    "three bytes cannot hold dimension count",
			buf:     []byte{0x00, 0x00, 0x08},
			wantErr: ErrTruncated,
		},
		{
			name:    "nonzero first reserved byte",
			buf:     []byte{0x01, 0x00, 0x08, 0x00, 0xFE},
			wantErr: ErrBadPadding,
		},
		{
			name:    "nonzero second reserved byte",
			buf:     []byte{0x00, 0xFF, 0x08, 0x00, 0xFE},
			wantErr: ErrBadPadding,
		},
		{
			name: "buffer too short for dimension table",
			buf: []byte{
				0x00, 0x00, 0x08, 0x02,
				0x00, 0x00, 0x00, 0x03,
				0x00, 0x00, 0x00,
			},
			wantErr: ErrTruncated,
		},
		{
			name:     "rank-0 scalar",
			buf:      []byte{0x00, 0x00, 0x08, 0x00, 0xFE},
			wantType: TypeUint8,
			wantDims: []uint32{},
		},
		{
			name: "two dimensions big-endian",
			buf: []byte{
				0x00, 0x00, 0x0D, 0x02,
				0x00, 0x00, 0x01, 0x00,
				0x12, 0x34, 0x56, 0x78,
			},
			wantType: TypeFloat32,
			wantDims: []uint32{256, 0x12345678},
		},
		{
			name: "unknown type code is not the header reader's concern",
			buf: []byte{
				0x00, 0x00, 0x7F, 0x01,
				0x00, 0x00, 0x00, 0x05,
			},
			wantType: TypeCode(0x7F),
			wantDims: []uint32{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHeader(tt.buf)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, h)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantType, h.Type)
			require.Equal(t, tt.wantDims, h.Dims)
		})
	}
}

func TestHeaderRankAndLength(t *testing.T) {
	tests := []struct {
		name       string
		dims       []uint32
		wantRank   int
		wantLength uint64
	}{
		{name: "scalar", dims: nil, wantRank: 0, wantLength: 4},
		{name: "vector", dims: []uint32{10}, wantRank: 1, wantLength: 8},
		{name: "matrix", dims: []uint32{3, 3}, wantRank: 2, wantLength: 12},
		{name: "max rank", dims: make([]uint32, 255), wantRank: 255, wantLength: 4 + 255*4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Header{Type: TypeUint8, Dims: tt.dims}
			require.Equal(t, tt.wantRank, h.Rank())
			require.Equal(t, tt.wantLength, h.Length())
		})
	}
}

func TestHeaderElementCount(t *testing.T) {
	tests := []struct {
		name    string
		dims    []uint32
		want    uint64
		wantErr error
	}{
		{name: "scalar has one element", dims: nil, want: 1},
		{name: "matrix", dims: []uint32{3, 3}, want: 9},
		{name: "zero dimension", dims: []uint32{28, 0}, want: 0},
		{
			name:    "overflowing product",
			dims:    []uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF},
			wantErr: ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Header{Type: TypeUint8, Dims: tt.dims}
			count, err := h.ElementCount()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, count)
		})
	}
}
