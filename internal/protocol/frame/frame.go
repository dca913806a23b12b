// Package frame owns the NXT Bluetooth telegram container: a 2-byte
// little-endian payload length followed by the telegram-class byte, the
// opcode byte and the concatenated field encodings.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Telegram classes from the firmware communication contract.
const (
	DirectWithReply byte = 0x00
	SystemWithReply byte = 0x01
	Reply           byte = 0x02
	DirectNoReply   byte = 0x80
	SystemNoReply   byte = 0x81

	// NoReplyBit set on a request class suppresses the brick's reply.
	NoReplyBit byte = 0x80
)

// PrefixLen is the size of the length prefix. The prefix counts the
// payload only, never itself.
const PrefixLen = 2

// HeaderLen is the telegram-class byte plus the opcode byte.
const HeaderLen = 2

var (
	ErrShortPrefix  = errors.New("frame: short length prefix")
	ErrShortFrame   = errors.New("frame: declared payload exceeds available bytes")
	ErrShortPayload = errors.New("frame: payload shorter than telegram header")
)

// BuildRequest assembles one request telegram: length prefix, telegram
// class, opcode, then the already-encoded parameters in declared order
// with no separators.
func BuildRequest(class, opcode byte, params []byte) []byte {
	payload := HeaderLen + len(params)
	buf := make([]byte, 0, PrefixLen+payload)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(payload))
	buf = append(buf, class, opcode)
	return append(buf, params...)
}

// SplitResponse strips the length prefix from one raw telegram and
// returns the telegram class, the opcode echo and the payload to be
// consumed field-by-field in reply-descriptor order. The first payload
// byte is always the status code.
func SplitResponse(raw []byte) (class, opcode byte, payload []byte, err error) {
	if len(raw) < PrefixLen {
		return 0, 0, nil, fmt.Errorf("%w: %d bytes", ErrShortPrefix, len(raw))
	}
	declared := int(binary.LittleEndian.Uint16(raw))
	body := raw[PrefixLen:]
	if declared > len(body) {
		return 0, 0, nil, fmt.Errorf("%w: declared %d, have %d", ErrShortFrame, declared, len(body))
	}
	if declared < HeaderLen {
		return 0, 0, nil, fmt.Errorf("%w: declared %d", ErrShortPayload, declared)
	}
	body = body[:declared]
	return body[0], body[1], body[HeaderLen:], nil
}
