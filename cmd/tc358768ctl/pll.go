package main

import (
	"github.com/spf13/cobra"

	"periph.io/x/devices/v3/tc358768"
)

func newPLLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pll",
		Short: "Solve the PLL configuration for the profile, without hardware",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := currentProfile()
			if err != nil {
				return err
			}
			opts := p.opts()
			pll, err := tc358768.SolvePLL(opts)
			if err != nil {
				return err
			}
			// Lane defaults mirror the driver's.
			dpi, dsi := p.DPILanes, p.DSILanes
			if dpi == 0 {
				dpi = 24
			}
			if dsi == 0 {
				dsi = 4
			}
			cmd.Printf("fbd:      %d\n", pll.FBD)
			cmd.Printf("prd:      %d\n", pll.PRD)
			cmd.Printf("frs:      %d\n", pll.FRS)
			cmd.Printf("bit clk:  %v\n", pll.BitClk)
			cmd.Printf("byte clk: %v\n", pll.ByteClk())
			cmd.Printf("pixel clk: %v (requested %v)\n",
				pll.PixelClock(dpi, dsi), opts.PixelClock)
			return nil
		},
	}
}

func newChipIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chipid",
		Short: "Read and print the chip identification register",
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

			id, err := dev.ChipID()
			if err != nil {
				return err
			}
			cmd.Printf("0x%04x\n", id)
			return nil
		},
	}
}
