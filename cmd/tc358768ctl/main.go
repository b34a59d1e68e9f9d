// tc358768ctl drives a TC358768 DPI-to-DSI bridge from the command line:
// it can solve the PLL configuration offline, bring the display pipe up
// and down, and poke individual registers for debugging.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	profileOptionName = "profile"
	panelOptionName   = "panel"
)

var (
	profilePath string
	panelName   string
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tc358768ctl",
		Short:         "Control a TC358768 DPI-to-DSI bridge",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newEnableCommand())
	cmd.AddCommand(newDisableCommand())
	cmd.AddCommand(newPLLCommand())
	cmd.AddCommand(newChipIDCommand())
	cmd.AddCommand(newRegCommand())
	cmd.AddCommand(newConfigCommand())
	cmd.PersistentFlags().StringVar(&profilePath, profileOptionName, "",
		"Path to a yaml panel profile")
	cmd.PersistentFlags().StringVar(&panelName, panelOptionName, "fortec",
		fmt.Sprintf("Built-in panel preset. Must be one of: %s.", presetNames()))
	return cmd
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tc358768ctl: %v\n", err)
		os.Exit(1)
	}
}
