package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func batteryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "battery",
		Short: "Read the brick battery voltage",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			mv, err := sess.BatteryLevel()
			if err != nil {
				return err
			}
			fmt.Printf("battery: %d mV (%.2f V)\n", mv, float64(mv)/1000)
			return nil
		},
	}
}
