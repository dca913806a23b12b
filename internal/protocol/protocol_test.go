package protocol

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestNumericRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		width int
	}{
		{"bool_true", NewBool(true), 1},
		{"bool_false", NewBool(false), 1},
		{"u8", NewU8(200), 1},
		{"i8_min", NewI8(-128), 1},
		{"u16", NewU16(44972), 2},
		{"i16_neg", NewI16(-12345), 2},
		{"u32_max", NewU32(4294967295), 4},
		{"i32_min", NewI32(-2147483648), 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wire, err := EncodeValue(tc.value)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if len(wire) != tc.width {
				t.Fatalf("width: got %d want %d", len(wire), tc.width)
			}
			decoded, consumed, err := DecodeValue(wire, tc.value.Type, LenUnset)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if consumed != tc.width {
				t.Fatalf("consumed: got %d want %d", consumed, tc.width)
			}
			if !reflect.DeepEqual(decoded, tc.value) {
				t.Fatalf("round-trip mismatch: got %+v want %+v", decoded, tc.value)
			}
		})
	}
}

func TestNumericLittleEndian(t *testing.T) {
	wire, err := EncodeValue(NewU16(440))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(wire, []byte{0xB8, 0x01}) {
		t.Fatalf("u16(440): got % X", wire)
	}
	wire, err = EncodeValue(NewU32(0x01020304))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(wire, []byte{0x04, 0x03, 0x02, 0x01}) {
		t.Fatalf("u32: got % X", wire)
	}
}

func TestNewNumericRanges(t *testing.T) {
	ok := []struct {
		tag Type
		v   int64
	}{
		{U8, 0}, {U8, 255},
		{I8, -128}, {I8, 127},
		{U16, 65535},
		{I16, -32768}, {I16, 32767},
		{U32, 4294967295},
		{I32, -2147483648}, {I32, 2147483647},
	}
	for _, tc := range ok {
		if _, err := NewNumeric(tc.tag, tc.v); err != nil {
			t.Fatalf("%s(%d): unexpected error %v", tc.tag, tc.v, err)
		}
	}

	bad := []struct {
		tag Type
		v   int64
	}{
		{U8, -1}, {U8, 256},
		{I8, 128}, {I8, -129},
		{U16, -1}, {U16, 65536},
		{I16, 32768},
		{U32, -1}, {U32, 4294967296},
		{I32, 2147483648},
	}
	for _, tc := range bad {
		if _, err := NewNumeric(tc.tag, tc.v); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("%s(%d): expected ErrOutOfRange, got %v", tc.tag, tc.v, err)
		}
	}
}

func TestBoolWireConvention(t *testing.T) {
	wire, err := EncodeValue(NewBool(true))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(wire, []byte{0xFF}) {
		t.Fatalf("true: got % X want FF", wire)
	}
	wire, err = EncodeValue(NewBool(false))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(wire, []byte{0x00}) {
		t.Fatalf("false: got % X want 00", wire)
	}

	// Firmware replies are not guaranteed to use 0xFF for true.
	v, _, err := DecodeValue([]byte{0x01}, Bool, LenUnset)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !v.Bool {
		t.Fatalf("expected nonzero byte to decode true")
	}
}

func TestBytesEncodeLengthMismatch(t *testing.T) {
	v := Value{Type: Bytes, Bytes: []byte{1, 2, 3}, Len: 5}
	if _, err := EncodeValue(v); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestBytesDecodeConsumesRemainder(t *testing.T) {
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	v, consumed, err := DecodeValue(buf, Bytes, LenUnset)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if consumed != 4 || v.Len != 4 {
		t.Fatalf("consumed=%d len=%d, want 4/4", consumed, v.Len)
	}
	if !bytes.Equal(v.Bytes, buf) {
		t.Fatalf("payload mismatch: % X", v.Bytes)
	}
	v.Bytes[0] = 0x00
	if buf[0] != 0xDE {
		t.Fatalf("decoded buffer aliases the input")
	}
}

func TestBytesDecodeFixedLength(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	v, consumed, err := DecodeValue(buf, Bytes, 3)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if consumed != 3 || !bytes.Equal(v.Bytes, []byte{1, 2, 3}) {
		t.Fatalf("got consumed=%d value=% X", consumed, v.Bytes)
	}
	if _, _, err := DecodeValue(buf, Bytes, 6); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}

func TestTextEncodeTerminated(t *testing.T) {
	wire, err := EncodeValue(NewText("hi"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(wire, []byte{'h', 'i', 0x00}) {
		t.Fatalf("got % X", wire)
	}
}

func TestTextEncodeFixedPadding(t *testing.T) {
	wire, err := EncodeValue(NewTextFixed("ABC", 10))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := append([]byte("ABC"), make([]byte, 7)...)
	if !bytes.Equal(wire, want) {
		t.Fatalf("got % X want % X", wire, want)
	}

	// Ten characters leave no room for the terminator in ten bytes.
	if _, err := EncodeValue(NewTextFixed("ABCDEFGHIJ", 10)); !errors.Is(err, ErrTextTooLong) {
		t.Fatalf("expected ErrTextTooLong, got %v", err)
	}
}

func TestTextDecodeFixedLength(t *testing.T) {
	buf := []byte("ABC\x00\x00\x00\x00\x00\x00\x00tail")
	v, consumed, err := DecodeValue(buf, Text, 10)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if consumed != 10 || v.Len != 10 {
		t.Fatalf("consumed=%d len=%d, want 10/10", consumed, v.Len)
	}
	if v.Text != "ABC" {
		t.Fatalf("logical string: got %q want %q", v.Text, "ABC")
	}
}

func TestTextDecodeScansTerminator(t *testing.T) {
	v, consumed, err := DecodeValue([]byte("hi\x00rest"), Text, LenUnset)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Text != "hi" || consumed != 3 || v.Len != 3 {
		t.Fatalf("got %q consumed=%d len=%d", v.Text, consumed, v.Len)
	}

	if _, _, err := DecodeValue([]byte("no terminator"), Text, LenUnset); !errors.Is(err, ErrMissingTerminator) {
		t.Fatalf("expected ErrMissingTerminator, got %v", err)
	}
}

func TestFilenameGrammar(t *testing.T) {
	if _, err := NewFilename("robot.rxe"); err != nil {
		t.Fatalf("robot.rxe: %v", err)
	}
	if _, err := NewFilename("this_name_is_too_long.rxe"); !errors.Is(err, ErrBadFilename) {
		t.Fatalf("expected ErrBadFilename for long base, got %v", err)
	}
	if _, err := NewFilename("robot.rx"); !errors.Is(err, ErrBadFilename) {
		t.Fatalf("expected ErrBadFilename for short extension, got %v", err)
	}
	if _, err := NewFilename("noextension"); !errors.Is(err, ErrBadFilename) {
		t.Fatalf("expected ErrBadFilename without extension, got %v", err)
	}
}

func TestFilenameEncodeFixedWidth(t *testing.T) {
	v, err := NewFilename("robot.rxe")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	v.Len = MaxFilenameWire
	wire, err := EncodeValue(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(wire) != MaxFilenameWire {
		t.Fatalf("width: got %d want %d", len(wire), MaxFilenameWire)
	}
	if !bytes.Equal(wire[:10], append([]byte("robot.rxe"), 0x00)) {
		t.Fatalf("prefix: % X", wire[:10])
	}
}

func TestFilenameEncodeRejectsBadGrammar(t *testing.T) {
	v := Value{Type: Filename, Text: "x.toolong", Len: LenUnset}
	if _, err := EncodeValue(v); !errors.Is(err, ErrBadFilename) {
		t.Fatalf("expected ErrBadFilename, got %v", err)
	}
}

func TestFilenameDecodePassThrough(t *testing.T) {
	// The device enforces grammar server-side; decode preserves bytes.
	buf := append([]byte("not-a-valid-name"), 0x00)
	v, consumed, err := DecodeValue(buf, Filename, LenUnset)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Text != "not-a-valid-name" || consumed != len(buf) {
		t.Fatalf("got %q consumed=%d", v.Text, consumed)
	}
}

func TestFilenameDecodeCappedAtWireField(t *testing.T) {
	buf := bytes.Repeat([]byte{'a'}, MaxFilenameWire+8)
	if _, _, err := DecodeValue(buf, Filename, LenUnset); !errors.Is(err, ErrMissingTerminator) {
		t.Fatalf("expected ErrMissingTerminator, got %v", err)
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	cases := []struct {
		tag  Type
		have int
	}{
		{Bool, 0},
		{U8, 0},
		{U16, 1},
		{I16, 1},
		{U32, 3},
		{I32, 2},
	}
	for _, tc := range cases {
		buf := make([]byte, tc.have)
		if _, _, err := DecodeValue(buf, tc.tag, LenUnset); !errors.Is(err, ErrShortBuffer) {
			t.Fatalf("%s: expected ErrShortBuffer, got %v", tc.tag, err)
		}
	}
	if _, _, err := DecodeValue(make([]byte, 4), Text, 10); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("fixed text: expected ErrShortBuffer, got %v", err)
	}
}
