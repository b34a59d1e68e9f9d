package main

import (
	"github.com/spf13/cobra"
)

func newEnableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enable",
		Short: "Bring the display pipe up and start streaming",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := currentProfile()
			if err != nil {
				return err
			}
			dev, bus, err := p.openDev()
			if err != nil {
				return err
			}
			defer bus.Close()

			if err := dev.Enable(); err != nil {
				return err
			}
			pll := dev.PLL()
			cmd.Printf("%v streaming, %v\n", dev, &pll)
			return nil
		},
	}
}

func newDisableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Stop streaming and power the display pipe down",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := currentProfile()
			if err != nil {
				return err
			}
			dev, bus, err := p.openDev()
			if err != nil {
				return err
			}
			defer bus.Close()

			if err := dev.Disable(); err != nil {
				return err
			}
			cmd.Printf("%v powered down\n", dev)
			return nil
		},
	}
}
