package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func keepAliveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keepalive",
		Short: "Reset the brick sleep timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			limitMs, err := sess.KeepAlive()
			if err != nil {
				return err
			}
			fmt.Printf("sleep limit: %s\n", time.Duration(limitMs)*time.Millisecond)
			return nil
		},
	}
}
