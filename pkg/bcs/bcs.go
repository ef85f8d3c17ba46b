// Package bcs implements the primitive layer of the Binary Canonical
// Serialization (BCS) format used by the ledger wire protocol.
//
// BCS is the deterministic binary encoding used by Move-based chains. This
// package only covers the primitives the transaction codec is built from:
//
//   - ULEB128 variable-length unsigned integers (sequence lengths, enum tags)
//   - Fixed-width little-endian integers (u8, u16, u32, u64)
//   - Fixed-length byte strings (addresses, digests)
//   - ULEB128 length-prefixed byte strings (pure values, UTF-8 identifiers)
//
// Higher-level structure encoding (field order, enum tag values) lives in
// the tx package; the reference for the format itself is:
//   - https://github.com/diem/bcs (format specification)
//   - sui/crates/sui-types (canonical field layouts)
//
// Decoding mirrors encoding exactly. Every decode failure is reported as a
// *MalformedInputError and no partially decoded value is ever returned.
package bcs

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// maxULEB128Bytes is the longest encoding of a 64-bit value: ceil(64/7).
const maxULEB128Bytes = 10

// Encoder accumulates BCS-encoded primitives in an in-memory buffer.
//
// The zero value is ready to use. Encoders are not safe for concurrent use;
// build one per serialization.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// WriteULEB128 writes v in unsigned little-endian base-128 form: 7 payload
// bits per byte, continuation bit set on every byte except the last.
func (e *Encoder) WriteULEB128(v uint64) {
	for {
		b := uint8(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		e.buf.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// WriteU8 writes a single byte.
func (e *Encoder) WriteU8(v uint8) {
	e.buf.WriteByte(v)
}

// WriteU16LE writes v as 2 little-endian bytes. Argument indices inside
// commands use this form, never ULEB128.
func (e *Encoder) WriteU16LE(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.buf.Write(b[:])
}

// WriteU32LE writes v as 4 little-endian bytes.
func (e *Encoder) WriteU32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

// WriteU64LE writes v as 8 little-endian bytes.
func (e *Encoder) WriteU64LE(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

// WriteFixedBytes writes b with no length prefix, asserting len(b) == n.
func (e *Encoder) WriteFixedBytes(b []byte, n int) error {
	if len(b) != n {
		return fmt.Errorf("fixed-length field: need %d bytes, got %d", n, len(b))
	}
	e.buf.Write(b)
	return nil
}

// WriteBytes writes a ULEB128 length prefix followed by the raw bytes.
func (e *Encoder) WriteBytes(b []byte) {
	e.WriteULEB128(uint64(len(b)))
	e.buf.Write(b)
}

// WriteString writes s as a ULEB128 length-prefixed UTF-8 byte string.
func (e *Encoder) WriteString(s string) {
	e.WriteULEB128(uint64(len(s)))
	e.buf.WriteString(s)
}

// WriteBool writes a bool as a single 0x00/0x01 byte.
func (e *Encoder) WriteBool(v bool) {
	if v {
		e.buf.WriteByte(0x01)
		return
	}
	e.buf.WriteByte(0x00)
}

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Bytes returns the encoded bytes. The slice is owned by the Encoder and
// only valid until the next write.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Decoder reads BCS primitives from a byte slice, tracking the offset of
// the next unread byte for error reporting.
type Decoder struct {
	r   *bytes.Reader
	off int
}

// NewDecoder returns a Decoder over data. The Decoder does not copy data;
// the caller must not mutate it while decoding.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{r: bytes.NewReader(data)}
}

// Remaining returns the number of undecoded bytes.
func (d *Decoder) Remaining() int {
	return d.r.Len()
}

// ReadULEB128 reads a ULEB128-encoded unsigned integer. Values that do not
// fit in 64 bits, or encodings longer than 10 bytes, are malformed.
func (d *Decoder) ReadULEB128() (uint64, error) {
	start := d.off
	var v uint64
	var shift uint
	for i := 0; ; i++ {
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, &MalformedInputError{Offset: start, Reason: "truncated ULEB128 value"}
		}
		d.off++
		if i >= maxULEB128Bytes || (shift == 63 && b&0x7F > 1) {
			return 0, &MalformedInputError{Offset: start, Reason: "ULEB128 value overflows 64 bits"}
		}
		v |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return v, nil
		}
		shift += 7
	}
}

// ReadU8 reads a single byte.
func (d *Decoder) ReadU8() (uint8, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, &MalformedInputError{Offset: d.off, Reason: "truncated buffer: need 1 byte"}
	}
	d.off++
	return b, nil
}

// ReadU16LE reads 2 little-endian bytes.
func (d *Decoder) ReadU16LE() (uint16, error) {
	b, err := d.readFull(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32LE reads 4 little-endian bytes.
func (d *Decoder) ReadU32LE() (uint32, error) {
	b, err := d.readFull(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64LE reads 8 little-endian bytes.
func (d *Decoder) ReadU64LE() (uint64, error) {
	b, err := d.readFull(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadFixedBytes reads exactly n raw bytes.
func (d *Decoder) ReadFixedBytes(n int) ([]byte, error) {
	return d.readFull(n)
}

// ReadBytes reads a ULEB128 length prefix followed by that many bytes.
func (d *Decoder) ReadBytes() ([]byte, error) {
	start := d.off
	n, err := d.ReadULEB128()
	if err != nil {
		return nil, err
	}
	if n > uint64(d.r.Len()) {
		return nil, &MalformedInputError{
			Offset: start,
			Reason: fmt.Sprintf("length prefix %d exceeds remaining %d bytes", n, d.r.Len()),
		}
	}
	return d.readFull(int(n))
}

// ReadString reads a ULEB128 length-prefixed UTF-8 string.
func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadBool reads a single 0x00/0x01 byte.
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadU8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, &MalformedInputError{Offset: d.off - 1, Reason: fmt.Sprintf("invalid bool byte 0x%02x", b)}
	}
}

func (d *Decoder) readFull(n int) ([]byte, error) {
	start := d.off
	buf := make([]byte, n)
	read, err := io.ReadFull(d.r, buf)
	d.off += read
	if err != nil {
		return nil, &MalformedInputError{
			Offset: start,
			Reason: fmt.Sprintf("truncated buffer: need %d bytes, got %d", n, read),
		}
	}
	return buf, nil
}

// EncodeULEB128 encodes a single ULEB128 value. Convenience for callers
// that pre-encode pure transaction inputs.
func EncodeULEB128(v uint64) []byte {
	e := NewEncoder()
	e.WriteULEB128(v)
	return e.Bytes()
}

// EncodeU64LE encodes a single u64 in little-endian form. Amounts and
// versions passed as pure transaction inputs use this encoding.
func EncodeU64LE(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}

// DecodeU64LE decodes an 8-byte little-endian u64, rejecting any other
// input length.
func DecodeU64LE(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, &MalformedInputError{Offset: 0, Reason: fmt.Sprintf("u64 needs 8 bytes, got %d", len(b))}
	}
	return binary.LittleEndian.Uint64(b), nil
}
