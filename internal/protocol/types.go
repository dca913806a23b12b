package protocol

import (
	"fmt"
	"strings"
)

// Type tags every protocol value and selects its wire width and decode
// strategy.
type Type uint8

const (
	Bool Type = iota
	U8
	I8
	U16
	I16
	U32
	I32
	Bytes
	Text
	Filename
)

func (t Type) String() string {
	switch t {
	case Bool:
		return "bool"
	case U8:
		return "u8"
	case I8:
		return "i8"
	case U16:
		return "u16"
	case I16:
		return "i16"
	case U32:
		return "u32"
	case I32:
		return "i32"
	case Bytes:
		return "bytes"
	case Text:
		return "text"
	case Filename:
		return "filename"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// LenUnset marks a Bytes/Text/Filename value with no fixed byte length.
const LenUnset = -1

// Representable ranges per fixed-width tag, exposed for caller-side
// validation before construction.
const (
	MinU8  = 0
	MaxU8  = 1<<8 - 1
	MinI8  = -1 << 7
	MaxI8  = 1<<7 - 1
	MinU16 = 0
	MaxU16 = 1<<16 - 1
	MinI16 = -1 << 15
	MaxI16 = 1<<15 - 1
	MinU32 = 0
	MaxU32 = 1<<32 - 1
	MinI32 = -1 << 31
	MaxI32 = 1<<31 - 1
)

// Filename grammar limits: up to 15 base characters, a dot, exactly 3
// extension characters, plus the null terminator on the wire.
const (
	MaxFilenameBase = 15
	FilenameExtLen  = 3
	MaxFilenameWire = MaxFilenameBase + 1 + FilenameExtLen + 1
)

// Value is one typed protocol value. Exactly the slot selected by Type is
// meaningful. Len carries the explicit byte length of the variable-length
// kinds: the declared buffer length for Bytes, the fixed wire length for
// Text/Filename (LenUnset for plain terminator-delimited text), and the
// consumed byte count after a decode.
type Value struct {
	Type Type

	Bool bool
	U8   uint8
	I8   int8
	U16  uint16
	I16  int16
	U32  uint32
	I32  int32

	Bytes []byte
	Text  string

	Len int
}

// NewBool creates a Bool value.
func NewBool(v bool) Value {
	return Value{Type: Bool, Bool: v, Len: LenUnset}
}

// NewU8 creates a U8 value.
func NewU8(v uint8) Value {
	return Value{Type: U8, U8: v, Len: LenUnset}
}

// NewI8 creates an I8 value.
func NewI8(v int8) Value {
	return Value{Type: I8, I8: v, Len: LenUnset}
}

// NewU16 creates a U16 value.
func NewU16(v uint16) Value {
	return Value{Type: U16, U16: v, Len: LenUnset}
}

// NewI16 creates an I16 value.
func NewI16(v int16) Value {
	return Value{Type: I16, I16: v, Len: LenUnset}
}

// NewU32 creates a U32 value.
func NewU32(v uint32) Value {
	return Value{Type: U32, U32: v, Len: LenUnset}
}

// NewI32 creates an I32 value.
func NewI32(v int32) Value {
	return Value{Type: I32, I32: v, Len: LenUnset}
}

// NewNumeric creates a numeric value of tag t from a wide integer,
// rejecting anything outside the tag's representable range. Truncation
// never happens silently.
func NewNumeric(t Type, v int64) (Value, error) {
	switch t {
	case Bool:
		return NewBool(v != 0), nil
	case U8:
		if v < MinU8 || v > MaxU8 {
			return Value{}, fmt.Errorf("%w: %d as %s", ErrOutOfRange, v, t)
		}
		return NewU8(uint8(v)), nil
	case I8:
		if v < MinI8 || v > MaxI8 {
			return Value{}, fmt.Errorf("%w: %d as %s", ErrOutOfRange, v, t)
		}
		return NewI8(int8(v)), nil
	case U16:
		if v < MinU16 || v > MaxU16 {
			return Value{}, fmt.Errorf("%w: %d as %s", ErrOutOfRange, v, t)
		}
		return NewU16(uint16(v)), nil
	case I16:
		if v < MinI16 || v > MaxI16 {
			return Value{}, fmt.Errorf("%w: %d as %s", ErrOutOfRange, v, t)
		}
		return NewI16(int16(v)), nil
	case U32:
		if v < MinU32 || v > MaxU32 {
			return Value{}, fmt.Errorf("%w: %d as %s", ErrOutOfRange, v, t)
		}
		return NewU32(uint32(v)), nil
	case I32:
		if v < MinI32 || v > MaxI32 {
			return Value{}, fmt.Errorf("%w: %d as %s", ErrOutOfRange, v, t)
		}
		return NewI32(int32(v)), nil
	default:
		return Value{}, fmt.Errorf("%w: %s is not numeric", ErrUnknownType, t)
	}
}

// NewBytes creates a Bytes value owning a copy of b. The declared length
// always matches the buffer; the wire format carries no length prefix for
// this kind, so the length travels in the descriptor instead.
func NewBytes(b []byte) Value {
	buf := make([]byte, len(b))
	copy(buf, b)
	return Value{Type: Bytes, Bytes: buf, Len: len(buf)}
}

// NewText creates a terminator-delimited Text value.
func NewText(s string) Value {
	return Value{Type: Text, Text: s, Len: LenUnset}
}

// NewTextFixed creates a Text value encoded into exactly n wire bytes,
// null-padded. The string must leave room for the terminator; the
// overflow is reported at encode time.
func NewTextFixed(s string, n int) Value {
	return Value{Type: Text, Text: s, Len: n}
}

// NewFilename creates a Filename value, rejecting names outside the 15.3
// grammar.
func NewFilename(s string) (Value, error) {
	if err := CheckFilename(s); err != nil {
		return Value{}, err
	}
	return Value{Type: Filename, Text: s, Len: LenUnset}, nil
}

// CheckFilename enforces the 15.3 grammar: at most 15 base characters,
// one dot, exactly 3 extension characters.
func CheckFilename(s string) error {
	dot := strings.LastIndexByte(s, '.')
	if dot < 0 {
		return fmt.Errorf("%w: %q has no extension", ErrBadFilename, s)
	}
	base, ext := s[:dot], s[dot+1:]
	if len(base) == 0 || len(base) > MaxFilenameBase {
		return fmt.Errorf("%w: %q base name length %d", ErrBadFilename, s, len(base))
	}
	if len(ext) != FilenameExtLen {
		return fmt.Errorf("%w: %q extension length %d", ErrBadFilename, s, len(ext))
	}
	return nil
}
