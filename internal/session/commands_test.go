package session

import (
	"bytes"
	"errors"
	"testing"

	"github.com/danmuck/nxtlink/internal/protocol"
	"github.com/danmuck/nxtlink/internal/protocol/frame"
	"github.com/danmuck/nxtlink/internal/protocol/schema"
)

func TestRepliesForShape(t *testing.T) {
	shape, ok := schema.Lookup(schema.GetBatteryLevel)
	if !ok {
		t.Fatalf("missing shape")
	}
	replies := RepliesFor(shape)
	if len(replies) != 2 {
		t.Fatalf("descriptors: got %d want 2", len(replies))
	}
	if replies[0].Type != protocol.U8 || replies[1].Type != protocol.U16 {
		t.Fatalf("types: %v %v", replies[0].Type, replies[1].Type)
	}
}

func TestBatteryLevel(t *testing.T) {
	// 8000 mV little-endian.
	dev := newScriptDevice([]byte{0x05, 0x00, frame.Reply, 0x0B, 0x00, 0x40, 0x1F})
	sess := newTestSession(t, dev)

	mv, err := sess.BatteryLevel()
	if err != nil {
		t.Fatalf("battery: %v", err)
	}
	if mv != 8000 {
		t.Fatalf("voltage: got %d want 8000", mv)
	}

	want := []byte{0x02, 0x00, 0x00, 0x0B}
	if !bytes.Equal(dev.wrote.Bytes(), want) {
		t.Fatalf("request wire mismatch:\n got % X\nwant % X", dev.wrote.Bytes(), want)
	}
}

func TestMessageWriteWire(t *testing.T) {
	dev := newScriptDevice([]byte{0x03, 0x00, frame.Reply, 0x09, 0x00})
	sess := newTestSession(t, dev)

	if err := sess.MessageWrite(4, "hi"); err != nil {
		t.Fatalf("message write: %v", err)
	}

	// inbox, explicit size, then the terminated text bytes.
	want := []byte{0x07, 0x00, 0x00, 0x09, 0x04, 0x03, 'h', 'i', 0x00}
	if !bytes.Equal(dev.wrote.Bytes(), want) {
		t.Fatalf("request wire mismatch:\n got % X\nwant % X", dev.wrote.Bytes(), want)
	}
}

func TestStartProgramPadsFilename(t *testing.T) {
	dev := newScriptDevice([]byte{0x03, 0x00, frame.Reply, 0x00, 0x00})
	sess := newTestSession(t, dev)

	if err := sess.StartProgram("robot.rxe"); err != nil {
		t.Fatalf("start program: %v", err)
	}
	// 2 prefix + class + opcode + 20-byte filename field.
	if dev.wrote.Len() != 2+2+protocol.MaxFilenameWire {
		t.Fatalf("request length: got %d", dev.wrote.Len())
	}
}

func TestStartProgramRejectsBadFilenameBeforeIO(t *testing.T) {
	dev := newScriptDevice(nil)
	sess := newTestSession(t, dev)

	err := sess.StartProgram("this_name_is_too_long.rxe")
	if !errors.Is(err, protocol.ErrBadFilename) {
		t.Fatalf("expected ErrBadFilename, got %v", err)
	}
	if dev.wrote.Len() != 0 {
		t.Fatalf("bytes hit the device: % X", dev.wrote.Bytes())
	}
}

func TestStatusErrorSurfaced(t *testing.T) {
	dev := newScriptDevice([]byte{0x03, 0x00, frame.Reply, 0x11, 0xEC})
	sess := newTestSession(t, dev)

	_, err := sess.CurrentProgramName()
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Status != schema.StatusNoActiveProgram {
		t.Fatalf("status: got 0x%02X", byte(statusErr.Status))
	}
	if got := Describe(err); got != "no active program" {
		t.Fatalf("describe: got %q", got)
	}
}

func TestCurrentProgramName(t *testing.T) {
	name := append([]byte("demo.rxe"), make([]byte, protocol.MaxFilenameWire-8)...)
	payload := append([]byte{0x00}, name...)
	body := append([]byte{frame.Reply, 0x11}, payload...)
	raw := append([]byte{byte(len(body)), 0x00}, body...)

	dev := newScriptDevice(raw)
	sess := newTestSession(t, dev)

	got, err := sess.CurrentProgramName()
	if err != nil {
		t.Fatalf("current program: %v", err)
	}
	if got != "demo.rxe" {
		t.Fatalf("name: got %q", got)
	}
}

func TestDescribeTaxonomy(t *testing.T) {
	if got := Describe(nil); got != "ok" {
		t.Fatalf("nil: %q", got)
	}
	if got := Describe(protocol.ErrOutOfRange); got == protocol.ErrOutOfRange.Error() {
		t.Fatalf("construction error not folded: %q", got)
	}
	if got := Describe(frame.ErrShortFrame); got == frame.ErrShortFrame.Error() {
		t.Fatalf("framing error not folded: %q", got)
	}
}
