package protocol

import (
	"encoding/binary"
	"fmt"
)

// EncodeValue returns the wire bytes for v. Fixed-width numerics encode
// little-endian; Bool encodes 0xFF for true per the protocol's "true = -1"
// convention. Pure, no I/O.
func EncodeValue(v Value) ([]byte, error) {
	return AppendValue(nil, v)
}

// AppendValue appends the wire encoding of v to dst and returns the
// extended slice.
func AppendValue(dst []byte, v Value) ([]byte, error) {
	switch v.Type {
	case Bool:
		if v.Bool {
			return append(dst, 0xFF), nil
		}
		return append(dst, 0x00), nil
	case U8:
		return append(dst, v.U8), nil
	case I8:
		return append(dst, byte(v.I8)), nil
	case U16:
		return binary.LittleEndian.AppendUint16(dst, v.U16), nil
	case I16:
		return binary.LittleEndian.AppendUint16(dst, uint16(v.I16)), nil
	case U32:
		return binary.LittleEndian.AppendUint32(dst, v.U32), nil
	case I32:
		return binary.LittleEndian.AppendUint32(dst, uint32(v.I32)), nil
	case Bytes:
		if v.Len == LenUnset || v.Len != len(v.Bytes) {
			return nil, fmt.Errorf("%w: declared %d, buffer %d", ErrLengthMismatch, v.Len, len(v.Bytes))
		}
		return append(dst, v.Bytes...), nil
	case Text:
		return appendText(dst, v.Text, v.Len)
	case Filename:
		if err := CheckFilename(v.Text); err != nil {
			return nil, err
		}
		n := v.Len
		if n == LenUnset {
			n = len(v.Text) + 1
		}
		return appendText(dst, v.Text, n)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, v.Type)
	}
}

// appendText writes s plus a null terminator. n fixes the total output
// width with null padding; the string must leave one byte for the
// terminator.
func appendText(dst []byte, s string, n int) ([]byte, error) {
	if n == LenUnset {
		dst = append(dst, s...)
		return append(dst, 0x00), nil
	}
	if len(s) > n-1 {
		return nil, fmt.Errorf("%w: %d chars into %d bytes", ErrTextTooLong, len(s), n)
	}
	dst = append(dst, s...)
	for i := len(s); i < n; i++ {
		dst = append(dst, 0x00)
	}
	return dst, nil
}
