// Package device owns the byte-stream boundary to the brick: an
// open/read/write/close contract over a Bluetooth RFCOMM node or a
// USB-serial bridge, plus the I/O error wrapper the transaction layer
// classifies against.
package device

import (
	"errors"
	"fmt"
)

// Device is the byte-stream handle consumed by the transaction driver.
// Reads and writes block; a zero-byte read means the far end closed.
// One transaction may be in flight per handle at a time; callers
// serialize.
type Device interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// ErrClosed signals that the device delivered no bytes because the link
// is gone.
var ErrClosed = errors.New("device: closed")

// IOError wraps a failure at the device boundary with the operation that
// hit it. After an IOError the handle's validity is undefined; callers
// should close and reopen.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("device: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO tags err as a device I/O failure unless it already is one.
func WrapIO(op string, err error) error {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, Err: err}
}

// IsIOError reports whether err originated at the device boundary.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
