package session

import (
	"fmt"

	"github.com/danmuck/nxtlink/internal/protocol"
	"github.com/danmuck/nxtlink/internal/protocol/frame"
	"github.com/danmuck/nxtlink/internal/protocol/schema"
)

// RepliesFor builds the reply descriptor list declared by shape.
func RepliesFor(shape schema.Shape) []Reply {
	replies := make([]Reply, len(shape.Replies))
	for i, spec := range shape.Replies {
		replies[i] = Reply{Type: spec.Type, Len: spec.Len}
	}
	return replies
}

// run executes op against its catalog shape and enforces a success
// status on the first reply field.
func (s *Session) run(op schema.Opcode, params ...protocol.Value) ([]Reply, int, error) {
	shape, ok := schema.Lookup(op)
	if !ok {
		return nil, 0, fmt.Errorf("session: no shape for %s", op)
	}
	if err := shape.CheckParams(params); err != nil {
		return nil, 0, err
	}
	replies := RepliesFor(shape)
	n, err := s.Do(frame.DirectWithReply, byte(op), params, replies)
	if err != nil {
		return replies, n, err
	}
	if n < 1 {
		return replies, n, ErrNoStatus
	}
	if st := schema.Status(replies[0].Value.U8); !st.Ok() {
		return replies, n, &StatusError{Op: op, Status: st}
	}
	return replies, n, nil
}

// PlayTone sounds the brick speaker.
func (s *Session) PlayTone(freqHz, durationMs uint16) error {
	_, _, err := s.run(schema.PlayTone, protocol.NewU16(freqHz), protocol.NewU16(durationMs))
	return err
}

// BatteryLevel reads the battery voltage in millivolts.
func (s *Session) BatteryLevel() (uint16, error) {
	replies, n, err := s.run(schema.GetBatteryLevel)
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, fmt.Errorf("%w: battery voltage", ErrShortReply)
	}
	return replies[1].Value.U16, nil
}

// StartProgram launches a compiled program (.rxe) on the brick.
func (s *Session) StartProgram(name string) error {
	file, err := protocol.NewFilename(name)
	if err != nil {
		return err
	}
	file.Len = protocol.MaxFilenameWire
	_, _, runErr := s.run(schema.StartProgram, file)
	return runErr
}

// StopProgram halts the running program.
func (s *Session) StopProgram() error {
	_, _, err := s.run(schema.StopProgram)
	return err
}

// PlaySoundFile plays a sound file (.rso), optionally looping.
func (s *Session) PlaySoundFile(name string, loop bool) error {
	file, err := protocol.NewFilename(name)
	if err != nil {
		return err
	}
	file.Len = protocol.MaxFilenameWire
	_, _, runErr := s.run(schema.PlaySoundFile, protocol.NewBool(loop), file)
	return runErr
}

// StopSoundPlayback cuts any playing sound.
func (s *Session) StopSoundPlayback() error {
	_, _, err := s.run(schema.StopSoundPlayback)
	return err
}

// CurrentProgramName reports the running program, or the firmware's
// no-active-program status as a StatusError.
func (s *Session) CurrentProgramName() (string, error) {
	replies, n, err := s.run(schema.GetCurrentProgramName)
	if err != nil {
		return "", err
	}
	if n < 2 {
		return "", fmt.Errorf("%w: program name", ErrShortReply)
	}
	return replies[1].Value.Text, nil
}

// KeepAlive resets the brick's sleep timer and reports the configured
// sleep limit in milliseconds.
func (s *Session) KeepAlive() (uint32, error) {
	replies, n, err := s.run(schema.KeepAlive)
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, fmt.Errorf("%w: sleep limit", ErrShortReply)
	}
	return replies[1].Value.U32, nil
}

// MessageWrite posts msg to a mailbox (0-9). The wire message is the
// text plus its terminator, sized explicitly.
func (s *Session) MessageWrite(inbox uint8, msg string) error {
	data, err := protocol.EncodeValue(protocol.NewText(msg))
	if err != nil {
		return err
	}
	size, err := protocol.NewNumeric(protocol.U8, int64(len(data)))
	if err != nil {
		return err
	}
	_, _, runErr := s.run(schema.MessageWrite,
		protocol.NewU8(inbox), size, protocol.NewBytes(data))
	return runErr
}
