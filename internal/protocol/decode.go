package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// DecodeValue decodes one value of tag t from the front of buf and
// reports the bytes consumed. hint is the expected byte length for the
// variable-length kinds: for Bytes it is the externally known field
// length (LenUnset consumes the whole remaining buffer, since this kind
// is not self-describing); for Text/Filename it is the fixed reply width
// (LenUnset scans for the null terminator). Fixed-width numerics ignore
// it.
func DecodeValue(buf []byte, t Type, hint int) (Value, int, error) {
	switch t {
	case Bool:
		if len(buf) < 1 {
			return Value{}, 0, shortErr(t, 1, len(buf))
		}
		return NewBool(buf[0] != 0), 1, nil
	case U8:
		if len(buf) < 1 {
			return Value{}, 0, shortErr(t, 1, len(buf))
		}
		return NewU8(buf[0]), 1, nil
	case I8:
		if len(buf) < 1 {
			return Value{}, 0, shortErr(t, 1, len(buf))
		}
		return NewI8(int8(buf[0])), 1, nil
	case U16:
		if len(buf) < 2 {
			return Value{}, 0, shortErr(t, 2, len(buf))
		}
		return NewU16(binary.LittleEndian.Uint16(buf)), 2, nil
	case I16:
		if len(buf) < 2 {
			return Value{}, 0, shortErr(t, 2, len(buf))
		}
		return NewI16(int16(binary.LittleEndian.Uint16(buf))), 2, nil
	case U32:
		if len(buf) < 4 {
			return Value{}, 0, shortErr(t, 4, len(buf))
		}
		return NewU32(binary.LittleEndian.Uint32(buf)), 4, nil
	case I32:
		if len(buf) < 4 {
			return Value{}, 0, shortErr(t, 4, len(buf))
		}
		return NewI32(int32(binary.LittleEndian.Uint32(buf))), 4, nil
	case Bytes:
		n := hint
		if n == LenUnset {
			n = len(buf)
		}
		if n > len(buf) {
			return Value{}, 0, shortErr(t, n, len(buf))
		}
		return NewBytes(buf[:n]), n, nil
	case Text:
		return decodeText(buf, t, hint, len(buf))
	case Filename:
		// Grammar is the device's problem on this side; bytes pass
		// through literally, capped at the 20-byte wire field.
		return decodeText(buf, t, hint, MaxFilenameWire)
	default:
		return Value{}, 0, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

// decodeText consumes a text field. With a fixed width it consumes
// exactly that many bytes and trims trailing nulls for the logical
// string; without one it scans for the first terminator within max
// bytes. Len on the returned value is the raw consumed count.
func decodeText(buf []byte, t Type, hint, max int) (Value, int, error) {
	if hint != LenUnset {
		if hint > len(buf) {
			return Value{}, 0, shortErr(t, hint, len(buf))
		}
		raw := buf[:hint]
		logical := string(bytes.TrimRight(raw, "\x00"))
		return Value{Type: t, Text: logical, Len: hint}, hint, nil
	}
	if max > len(buf) {
		max = len(buf)
	}
	idx := bytes.IndexByte(buf[:max], 0x00)
	if idx < 0 {
		return Value{}, 0, fmt.Errorf("%w: %s within %d bytes", ErrMissingTerminator, t, max)
	}
	n := idx + 1
	return Value{Type: t, Text: string(buf[:idx]), Len: n}, n, nil
}

func shortErr(t Type, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, have %d", ErrShortBuffer, t, need, have)
}
