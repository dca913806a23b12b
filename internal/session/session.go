package session

import (
	"encoding/binary"
	"io"

	"github.com/rs/zerolog"

	"github.com/danmuck/nxtlink/internal/device"
	"github.com/danmuck/nxtlink/internal/protocol"
	"github.com/danmuck/nxtlink/internal/protocol/frame"
)

// Reply is one response descriptor: the expected tag and wire length
// going in, the decoded value coming out. Len is the fixed byte length
// for Text/Filename replies and the externally known field length for
// Bytes (protocol.LenUnset lets a trailing Bytes field soak up the rest
// of the payload). Decoded buffers belong to the caller; the session
// keeps no reference once Do returns.
type Reply struct {
	Type  protocol.Type
	Len   int
	Value protocol.Value
}

// Session drives transactions over one device handle. The protocol is
// strictly half-duplex; callers serialize, the session does not lock.
type Session struct {
	dev device.Device
	log zerolog.Logger
}

// New wraps an open device handle.
func New(dev device.Device, log zerolog.Logger) *Session {
	return &Session{dev: dev, log: log}
}

// Close releases the underlying device handle.
func (s *Session) Close() error {
	return s.dev.Close()
}

// Do performs one command transaction: encode params, frame, write,
// read the 2-byte length prefix, read exactly the declared body, then
// decode each reply descriptor in order. It returns the number of
// descriptors actually populated; payload exhaustion between fields is
// not an error, the count is the caller's to check. A class with the
// no-reply bit set returns after the write.
func (s *Session) Do(class, opcode byte, params []protocol.Value, replies []Reply) (int, error) {
	encoded := make([]byte, 0, 32)
	for _, p := range params {
		var err error
		encoded, err = protocol.AppendValue(encoded, p)
		if err != nil {
			return 0, err
		}
	}

	req := frame.BuildRequest(class, opcode, encoded)
	s.log.Debug().
		Hex("frame", req).
		Uint8("opcode", opcode).
		Int("params", len(params)).
		Msg("request")

	n, err := s.dev.Write(req)
	if err != nil {
		return 0, device.WrapIO("write", err)
	}
	if n != len(req) {
		return 0, device.WrapIO("write", io.ErrShortWrite)
	}

	if class&frame.NoReplyBit != 0 {
		return 0, nil
	}

	var prefix [frame.PrefixLen]byte
	if _, err := io.ReadFull(s.dev, prefix[:]); err != nil {
		return 0, device.WrapIO("read length", err)
	}
	body := make([]byte, binary.LittleEndian.Uint16(prefix[:]))
	if _, err := io.ReadFull(s.dev, body); err != nil {
		return 0, device.WrapIO("read body", err)
	}

	raw := append(prefix[:], body...)
	replyClass, echo, payload, err := frame.SplitResponse(raw)
	if err != nil {
		return 0, err
	}
	if replyClass != frame.Reply || echo != opcode {
		// Surfaced for diagnosis only; descriptor order stays the
		// single source of truth for the payload.
		s.log.Debug().
			Uint8("class", replyClass).
			Uint8("echo", echo).
			Msg("unexpected reply header")
	}

	populated := 0
	for i := range replies {
		if len(payload) == 0 {
			break
		}
		value, consumed, err := protocol.DecodeValue(payload, replies[i].Type, replies[i].Len)
		if err != nil {
			return populated, err
		}
		replies[i].Value = value
		payload = payload[consumed:]
		populated++
	}

	s.log.Debug().
		Uint8("opcode", opcode).
		Int("requested", len(replies)).
		Int("populated", populated).
		Msg("response")
	return populated, nil
}
