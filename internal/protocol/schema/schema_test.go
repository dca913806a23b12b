package schema

import (
	"testing"

	"github.com/danmuck/nxtlink/internal/protocol"
)

var allOpcodes = []Opcode{
	StartProgram, StopProgram, PlaySoundFile, PlayTone, SetOutputState,
	SetInputMode, GetOutputState, GetInputValues, ResetInputScaledValue,
	MessageWrite, ResetMotorPosition, GetBatteryLevel, StopSoundPlayback,
	KeepAlive, LSGetStatus, LSWrite, LSRead, GetCurrentProgramName,
	MessageRead,
}

func TestEveryShapeLeadsWithStatus(t *testing.T) {
	for _, op := range allOpcodes {
		shape, ok := Lookup(op)
		if !ok {
			t.Fatalf("%s: missing shape", op)
		}
		if shape.Op != op {
			t.Fatalf("%s: shape tagged %s", op, shape.Op)
		}
		if len(shape.Replies) == 0 {
			t.Fatalf("%s: no reply specs", op)
		}
		first := shape.Replies[0]
		if first.Type != protocol.U8 || first.Name != "status" {
			t.Fatalf("%s: first reply is %s %q, want u8 status", op, first.Type, first.Name)
		}
	}
}

func TestLookupUnknownOpcode(t *testing.T) {
	if _, ok := Lookup(Opcode(0x42)); ok {
		t.Fatalf("expected no shape for 0x42")
	}
}

func TestCheckParams(t *testing.T) {
	shape, _ := Lookup(PlayTone)

	ok := []protocol.Value{protocol.NewU16(440), protocol.NewU16(250)}
	if err := shape.CheckParams(ok); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	if err := shape.CheckParams(ok[:1]); err == nil {
		t.Fatalf("expected count mismatch error")
	}

	wrongType := []protocol.Value{protocol.NewU16(440), protocol.NewU8(250)}
	if err := shape.CheckParams(wrongType); err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

func TestStatusDescriptions(t *testing.T) {
	if !StatusSuccess.Ok() {
		t.Fatalf("success must be ok")
	}
	if StatusNoActiveProgram.Ok() {
		t.Fatalf("0xEC must not be ok")
	}
	if got := StatusNoActiveProgram.String(); got != "no active program" {
		t.Fatalf("unexpected description: %q", got)
	}
	if got := Status(0x21).String(); got != "unknown status 0x21" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestOpcodeNames(t *testing.T) {
	if PlayTone.String() != "PlayTone" {
		t.Fatalf("unexpected name: %q", PlayTone.String())
	}
	if Opcode(0x42).String() != "Opcode(0x42)" {
		t.Fatalf("unexpected fallback: %q", Opcode(0x42).String())
	}
}
