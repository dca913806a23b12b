package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/nxtlink/internal/protocol/schema"
	"github.com/danmuck/nxtlink/internal/session"
)

func programCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Start, stop or inspect the running program",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start <file.rxe>",
			Short: "Start a compiled program on the brick",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := openSession()
				if err != nil {
					return err
				}
				defer sess.Close()
				return sess.StartProgram(args[0])
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop the running program",
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := openSession()
				if err != nil {
					return err
				}
				defer sess.Close()
				return sess.StopProgram()
			},
		},
		&cobra.Command{
			Use:   "current",
			Short: "Show the running program name",
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := openSession()
				if err != nil {
					return err
				}
				defer sess.Close()
				name, err := sess.CurrentProgramName()
				var statusErr *session.StatusError
				if errors.As(err, &statusErr) && statusErr.Status == schema.StatusNoActiveProgram {
					fmt.Println("no active program")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Println(name)
				return nil
			},
		},
	)

	return cmd
}
