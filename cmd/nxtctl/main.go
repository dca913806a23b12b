package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/nxtlink/internal/logging"
	"github.com/danmuck/nxtlink/internal/session"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var configPath string

func main() {
	logging.ConfigureRuntime()

	root := &cobra.Command{
		Use:           "nxtctl",
		Short:         "Control a LEGO NXT brick over its Bluetooth serial link",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to nxtctl.toml")

	root.AddCommand(
		playToneCmd(),
		batteryCmd(),
		programCmd(),
		messageCmd(),
		keepAliveCmd(),
		versionCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nxtctl: %s\n", session.Describe(err))
		os.Exit(1)
	}
}
