package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func messageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Mailbox messaging",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "write <inbox> <text>",
		Short: "Post a message to a brick mailbox (0-9)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inbox, err := strconv.ParseUint(args[0], 10, 8)
			if err != nil || inbox > 9 {
				return fmt.Errorf("inbox must be 0-9, got %q", args[0])
			}
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			return sess.MessageWrite(uint8(inbox), args[1])
		},
	})

	return cmd
}
