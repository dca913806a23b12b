// Package schema owns the declarative opcode catalog: which parameters
// each direct command carries and the shape of its reply. The catalog is
// data; the marshalling engine never interprets an opcode beyond copying
// it onto the wire.
package schema

import (
	"fmt"

	"github.com/danmuck/nxtlink/internal/protocol"
)

// Opcode identifies one direct command from the firmware contract.
type Opcode byte

const (
	StartProgram          Opcode = 0x00
	StopProgram           Opcode = 0x01
	PlaySoundFile         Opcode = 0x02
	PlayTone              Opcode = 0x03
	SetOutputState        Opcode = 0x04
	SetInputMode          Opcode = 0x05
	GetOutputState        Opcode = 0x06
	GetInputValues        Opcode = 0x07
	ResetInputScaledValue Opcode = 0x08
	MessageWrite          Opcode = 0x09
	ResetMotorPosition    Opcode = 0x0A
	GetBatteryLevel       Opcode = 0x0B
	StopSoundPlayback     Opcode = 0x0C
	KeepAlive             Opcode = 0x0D
	LSGetStatus           Opcode = 0x0E
	LSWrite               Opcode = 0x0F
	LSRead                Opcode = 0x10
	GetCurrentProgramName Opcode = 0x11
	MessageRead           Opcode = 0x13
)

var opcodeNames = map[Opcode]string{
	StartProgram:          "StartProgram",
	StopProgram:           "StopProgram",
	PlaySoundFile:         "PlaySoundFile",
	PlayTone:              "PlayTone",
	SetOutputState:        "SetOutputState",
	SetInputMode:          "SetInputMode",
	GetOutputState:        "GetOutputState",
	GetInputValues:        "GetInputValues",
	ResetInputScaledValue: "ResetInputScaledValue",
	MessageWrite:          "MessageWrite",
	ResetMotorPosition:    "ResetMotorPosition",
	GetBatteryLevel:       "GetBatteryLevel",
	StopSoundPlayback:     "StopSoundPlayback",
	KeepAlive:             "KeepAlive",
	LSGetStatus:           "LSGetStatus",
	LSWrite:               "LSWrite",
	LSRead:                "LSRead",
	GetCurrentProgramName: "GetCurrentProgramName",
	MessageRead:           "MessageRead",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(0x%02X)", byte(o))
}

// Spec declares one field position within a command's parameters or
// reply. Len is the fixed wire length for the variable-length kinds and
// protocol.LenUnset everywhere else.
type Spec struct {
	Name string
	Type protocol.Type
	Len  int
}

// Shape is the full wire contract of one opcode. The first reply spec is
// always the status byte.
type Shape struct {
	Op      Opcode
	Params  []Spec
	Replies []Spec
}

func scalar(name string, t protocol.Type) Spec {
	return Spec{Name: name, Type: t, Len: protocol.LenUnset}
}

func fixed(name string, t protocol.Type, n int) Spec {
	return Spec{Name: name, Type: t, Len: n}
}

func status() Spec {
	return scalar("status", protocol.U8)
}

var shapes = map[Opcode]Shape{
	StartProgram: {
		Op:      StartProgram,
		Params:  []Spec{fixed("file", protocol.Filename, protocol.MaxFilenameWire)},
		Replies: []Spec{status()},
	},
	StopProgram: {
		Op:      StopProgram,
		Replies: []Spec{status()},
	},
	PlaySoundFile: {
		Op: PlaySoundFile,
		Params: []Spec{
			scalar("loop", protocol.Bool),
			fixed("file", protocol.Filename, protocol.MaxFilenameWire),
		},
		Replies: []Spec{status()},
	},
	PlayTone: {
		Op: PlayTone,
		Params: []Spec{
			scalar("frequency_hz", protocol.U16),
			scalar("duration_ms", protocol.U16),
		},
		Replies: []Spec{status()},
	},
	SetOutputState: {
		Op: SetOutputState,
		Params: []Spec{
			scalar("port", protocol.U8),
			scalar("power", protocol.I8),
			scalar("mode", protocol.U8),
			scalar("regulation", protocol.U8),
			scalar("turn_ratio", protocol.I8),
			scalar("run_state", protocol.U8),
			scalar("tacho_limit", protocol.U32),
		},
		Replies: []Spec{status()},
	},
	SetInputMode: {
		Op: SetInputMode,
		Params: []Spec{
			scalar("port", protocol.U8),
			scalar("sensor_type", protocol.U8),
			scalar("sensor_mode", protocol.U8),
		},
		Replies: []Spec{status()},
	},
	GetOutputState: {
		Op:     GetOutputState,
		Params: []Spec{scalar("port", protocol.U8)},
		Replies: []Spec{
			status(),
			scalar("port", protocol.U8),
			scalar("power", protocol.I8),
			scalar("mode", protocol.U8),
			scalar("regulation", protocol.U8),
			scalar("turn_ratio", protocol.I8),
			scalar("run_state", protocol.U8),
			scalar("tacho_limit", protocol.U32),
			scalar("tacho_count", protocol.I32),
			scalar("block_tacho_count", protocol.I32),
			scalar("rotation_count", protocol.I32),
		},
	},
	GetInputValues: {
		Op:     GetInputValues,
		Params: []Spec{scalar("port", protocol.U8)},
		Replies: []Spec{
			status(),
			scalar("port", protocol.U8),
			scalar("valid", protocol.Bool),
			scalar("calibrated", protocol.Bool),
			scalar("sensor_type", protocol.U8),
			scalar("sensor_mode", protocol.U8),
			scalar("raw", protocol.U16),
			scalar("normalized", protocol.U16),
			scalar("scaled", protocol.I16),
			scalar("calibrated_value", protocol.I16),
		},
	},
	ResetInputScaledValue: {
		Op:      ResetInputScaledValue,
		Params:  []Spec{scalar("port", protocol.U8)},
		Replies: []Spec{status()},
	},
	MessageWrite: {
		Op: MessageWrite,
		Params: []Spec{
			scalar("inbox", protocol.U8),
			scalar("size", protocol.U8),
			scalar("data", protocol.Bytes),
		},
		Replies: []Spec{status()},
	},
	ResetMotorPosition: {
		Op: ResetMotorPosition,
		Params: []Spec{
			scalar("port", protocol.U8),
			scalar("relative", protocol.Bool),
		},
		Replies: []Spec{status()},
	},
	GetBatteryLevel: {
		Op:      GetBatteryLevel,
		Replies: []Spec{status(), scalar("voltage_mv", protocol.U16)},
	},
	StopSoundPlayback: {
		Op:      StopSoundPlayback,
		Replies: []Spec{status()},
	},
	KeepAlive: {
		Op:      KeepAlive,
		Replies: []Spec{status(), scalar("sleep_limit_ms", protocol.U32)},
	},
	LSGetStatus: {
		Op:      LSGetStatus,
		Params:  []Spec{scalar("port", protocol.U8)},
		Replies: []Spec{status(), scalar("bytes_ready", protocol.U8)},
	},
	LSWrite: {
		Op: LSWrite,
		Params: []Spec{
			scalar("port", protocol.U8),
			scalar("tx_len", protocol.U8),
			scalar("rx_len", protocol.U8),
			scalar("tx_data", protocol.Bytes),
		},
		Replies: []Spec{status()},
	},
	LSRead: {
		Op:     LSRead,
		Params: []Spec{scalar("port", protocol.U8)},
		Replies: []Spec{
			status(),
			scalar("bytes_read", protocol.U8),
			fixed("rx_data", protocol.Bytes, 16),
		},
	},
	GetCurrentProgramName: {
		Op:      GetCurrentProgramName,
		Replies: []Spec{status(), fixed("file", protocol.Filename, protocol.MaxFilenameWire)},
	},
	MessageRead: {
		Op: MessageRead,
		Params: []Spec{
			scalar("remote_inbox", protocol.U8),
			scalar("local_inbox", protocol.U8),
			scalar("remove", protocol.Bool),
		},
		Replies: []Spec{
			status(),
			scalar("local_inbox", protocol.U8),
			scalar("size", protocol.U8),
			fixed("data", protocol.Bytes, 59),
		},
	},
}

// Lookup returns the declared shape for op.
func Lookup(op Opcode) (Shape, bool) {
	s, ok := shapes[op]
	return s, ok
}

// CheckParams verifies that the supplied values line up with the shape's
// parameter list by position and tag.
func (s Shape) CheckParams(params []protocol.Value) error {
	if len(params) != len(s.Params) {
		return fmt.Errorf("schema: %s takes %d params, got %d", s.Op, len(s.Params), len(params))
	}
	for i, p := range params {
		if p.Type != s.Params[i].Type {
			return fmt.Errorf("schema: %s param %q wants %s, got %s",
				s.Op, s.Params[i].Name, s.Params[i].Type, p.Type)
		}
	}
	return nil
}
