package idx

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/scigolib/idx/internal/core"
	"github.com/scigolib/idx/internal/utils"
)

// File represents a fully-read IDX buffer that passed structural validation.
// The payload bytes are retained raw and uninterpreted.
type File struct {
	buf      []byte
	hdr      *core.Header
	elements uint64
	width    uint64
}

// Open reads an IDX file, transparently decompressing gzip (MNIST files are
// commonly shipped as .gz), validates its structure and returns a handle to
// the parsed header and raw payload.
func Open(filename string) (*File, error) {
	//nolint:gosec // G304: User-provided filename is intentional for IDX file library
	f, err := os.Open(filename)
	if err != nil {
		return nil, utils.WrapError("file open failed", err)
	}
	defer func() { _ = f.Close() }()

	if isGzipFile(f) {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, utils.WrapError("gzip open failed", err)
		}
		defer func() { _ = gz.Close() }()
		return OpenReader(gz)
	}

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, utils.WrapError("file read failed", err)
	}
	return fromBuffer(buf)
}

// OpenReader reads an entire IDX stream and validates it. Gzip streams are
// decompressed first. The stream is buffered fully before validation; there
// is no partial or streaming mode.
func OpenReader(r io.Reader) (*File, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, utils.WrapError("stream read failed", err)
	}

	if isGzipData(buf) {
		gz, err := gzip.NewReader(bytes.NewReader(buf))
		if err != nil {
			return nil, utils.WrapError("gzip open failed", err)
		}
		defer func() { _ = gz.Close() }()

		buf, err = io.ReadAll(gz)
		if err != nil {
			return nil, utils.WrapError("gzip read failed", err)
		}
	}

	return fromBuffer(buf)
}

// fromBuffer validates buf and builds the File handle. Derived quantities
// are computed once here; validation already proved they cannot overflow.
func fromBuffer(buf []byte) (*File, error) {
	if err := core.ValidateBuffer(buf); err != nil {
		return nil, utils.WrapError("idx validation failed", err)
	}

	hdr, err := core.ParseHeader(buf)
	if err != nil {
		return nil, utils.WrapError("idx header parse failed", err)
	}

	elements, err := hdr.ElementCount()
	if err != nil {
		return nil, utils.WrapError("element count failed", err)
	}

	width, err := hdr.Type.Width()
	if err != nil {
		return nil, utils.WrapError("type resolution failed", err)
	}

	return &File{
		buf:      buf,
		hdr:      hdr,
		elements: elements,
		width:    width,
	}, nil
}

// gzip member magic.
var gzipMagic = []byte{0x1f, 0x8b}

// isGzipFile sniffs the gzip magic at offset 0 without consuming the reader.
func isGzipFile(r utils.ReaderAt) bool {
	buf := utils.GetBuffer(len(gzipMagic))
	defer utils.ReleaseBuffer(buf)

	if _, err := r.ReadAt(buf, 0); err != nil {
		return false
	}
	return bytes.Equal(buf, gzipMagic)
}

// isGzipData reports whether buf starts with the gzip magic.
func isGzipData(buf []byte) bool {
	return len(buf) >= len(gzipMagic) && bytes.Equal(buf[:len(gzipMagic)], gzipMagic)
}

// Header returns the parsed IDX header.
func (f *File) Header() *Header {
	return f.hdr
}

// TypeCode returns the declared element type.
func (f *File) TypeCode() TypeCode {
	return f.hdr.Type
}

// Dims returns the declared dimension sizes, outermost first. The slice is
// the header's own; callers must not mutate it.
func (f *File) Dims() []uint32 {
	return f.hdr.Dims
}

// Rank returns the number of dimensions (0 for a scalar).
func (f *File) Rank() int {
	return f.hdr.Rank()
}

// ElementCount returns the total number of elements declared by the shape.
func (f *File) ElementCount() uint64 {
	return f.elements
}

// ElementWidth returns the element size in bytes.
func (f *File) ElementWidth() uint64 {
	return f.width
}

// Payload returns the raw element bytes following the header. The bytes are
// not interpreted or byte-order converted; decoding is the caller's concern.
func (f *File) Payload() []byte {
	return f.buf[f.hdr.Length():]
}
