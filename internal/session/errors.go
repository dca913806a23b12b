package session

import (
	"errors"
	"fmt"

	"github.com/danmuck/nxtlink/internal/device"
	"github.com/danmuck/nxtlink/internal/protocol"
	"github.com/danmuck/nxtlink/internal/protocol/frame"
	"github.com/danmuck/nxtlink/internal/protocol/schema"
)

var (
	ErrNoStatus   = errors.New("session: reply carried no status byte")
	ErrShortReply = errors.New("session: reply missing expected fields")
)

// StatusError reports a command the brick received and rejected.
type StatusError struct {
	Op     schema.Opcode
	Status schema.Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("session: %s: brick replied 0x%02X (%s)", e.Op, byte(e.Status), e.Status)
}

// IsFramingError reports whether err means the reply bytes could not be
// reconciled with the declared framing. The device handle stays usable
// after a framing error; after a device I/O error it does not.
func IsFramingError(err error) bool {
	return errors.Is(err, frame.ErrShortPrefix) ||
		errors.Is(err, frame.ErrShortFrame) ||
		errors.Is(err, frame.ErrShortPayload) ||
		errors.Is(err, protocol.ErrShortBuffer) ||
		errors.Is(err, protocol.ErrMissingTerminator)
}

// IsConstructionError reports whether err was raised before any I/O by
// an invalid caller-supplied value.
func IsConstructionError(err error) bool {
	return errors.Is(err, protocol.ErrOutOfRange) ||
		errors.Is(err, protocol.ErrLengthMismatch) ||
		errors.Is(err, protocol.ErrTextTooLong) ||
		errors.Is(err, protocol.ErrBadFilename) ||
		errors.Is(err, protocol.ErrUnknownType)
}

// Describe renders err for an end user, folding the error taxonomy into
// plain words. Status rejections render through the firmware status
// table.
func Describe(err error) string {
	if err == nil {
		return "ok"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status.String()
	}
	switch {
	case device.IsIOError(err):
		return fmt.Sprintf("device I/O failure: %v", err)
	case IsFramingError(err):
		return fmt.Sprintf("malformed reply frame: %v", err)
	case IsConstructionError(err):
		return fmt.Sprintf("invalid command value: %v", err)
	case errors.Is(err, ErrNoStatus), errors.Is(err, ErrShortReply):
		return fmt.Sprintf("incomplete reply: %v", err)
	default:
		return err.Error()
	}
}
