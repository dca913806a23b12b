package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/nxtlink/internal/protocol"
)

func playToneCmd() *cobra.Command {
	var freq, duration int

	cmd := &cobra.Command{
		Use:   "playtone",
		Short: "Sound the brick speaker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if freq < protocol.MinU16 || freq > protocol.MaxU16 {
				return fmt.Errorf("frequency %d out of range [%d, %d]", freq, protocol.MinU16, protocol.MaxU16)
			}
			if duration < protocol.MinU16 || duration > protocol.MaxU16 {
				return fmt.Errorf("duration %d out of range [%d, %d]", duration, protocol.MinU16, protocol.MaxU16)
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			return sess.PlayTone(uint16(freq), uint16(duration))
		},
	}

	cmd.Flags().IntVarP(&freq, "frequency", "f", 440, "tone frequency in Hz")
	cmd.Flags().IntVarP(&duration, "duration", "d", 250, "tone duration in ms")

	return cmd
}
