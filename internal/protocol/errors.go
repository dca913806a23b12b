package protocol

import "errors"

var (
	ErrOutOfRange        = errors.New("protocol: value out of range for type")
	ErrLengthMismatch    = errors.New("protocol: declared length does not match buffer")
	ErrTextTooLong       = errors.New("protocol: text does not fit fixed length")
	ErrBadFilename       = errors.New("protocol: filename violates 15.3 grammar")
	ErrShortBuffer       = errors.New("protocol: short buffer")
	ErrMissingTerminator = errors.New("protocol: missing null terminator")
	ErrUnknownType       = errors.New("protocol: unknown type tag")
)
