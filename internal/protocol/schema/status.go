package schema

import "fmt"

// Status is the 1-byte result code carried first in every reply payload.
type Status byte

const (
	StatusSuccess              Status = 0x00
	StatusPendingCommunication Status = 0x20
	StatusMailboxQueueEmpty    Status = 0x40
	StatusRequestFailed        Status = 0xBD
	StatusUnknownOpcode        Status = 0xBE
	StatusInsanePacket         Status = 0xBF
	StatusDataOutOfRange       Status = 0xC0
	StatusBusError             Status = 0xDD
	StatusBufferFull           Status = 0xDE
	StatusInvalidChannel       Status = 0xDF
	StatusChannelBusy          Status = 0xE0
	StatusNoActiveProgram      Status = 0xEC
	StatusIllegalSize          Status = 0xED
	StatusIllegalMailboxQueue  Status = 0xEE
	StatusInvalidField         Status = 0xEF
	StatusBadInputOutput       Status = 0xF0
	StatusOutOfMemory          Status = 0xFB
	StatusBadArguments         Status = 0xFF
)

var statusText = map[Status]string{
	StatusSuccess:              "success",
	StatusPendingCommunication: "pending communication transaction in progress",
	StatusMailboxQueueEmpty:    "specified mailbox queue is empty",
	StatusRequestFailed:        "request failed (i.e. specified file not found)",
	StatusUnknownOpcode:        "unknown command opcode",
	StatusInsanePacket:         "insane packet",
	StatusDataOutOfRange:       "data contains out-of-range values",
	StatusBusError:             "communication bus error",
	StatusBufferFull:           "no free memory in communication buffer",
	StatusInvalidChannel:       "specified channel/connection is not valid",
	StatusChannelBusy:          "specified channel/connection not configured or busy",
	StatusNoActiveProgram:      "no active program",
	StatusIllegalSize:          "illegal size specified",
	StatusIllegalMailboxQueue:  "illegal mailbox queue ID specified",
	StatusInvalidField:         "attempted to access invalid field of a structure",
	StatusBadInputOutput:       "bad input or output specified",
	StatusOutOfMemory:          "insufficient memory available",
	StatusBadArguments:         "bad arguments",
}

// Ok reports whether the brick accepted the command.
func (s Status) Ok() bool {
	return s == StatusSuccess
}

func (s Status) String() string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return fmt.Sprintf("unknown status 0x%02X", byte(s))
}
