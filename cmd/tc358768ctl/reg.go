package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

const (
	regOptionName = "reg"
	valOptionName = "val"
)

func parseHex(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return v, nil
}

func newRegCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reg",
		Short: "Raw register access for debugging",
	}
	cmd.AddCommand(newRegGetCommand())
	cmd.AddCommand(newRegSetCommand())
	return cmd
}

func newRegGetCommand() *cobra.Command {
	var regNum string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get reg value",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := parseHex(regNum, 16)
			if err != nil {
				return err
			}
			p, err := currentProfile()
			if err != nil {
				return err
			}
			dev, bus, err := p.openDev()
			if err != nil {
				return err
			}
			defer bus.Close()

			v, err := dev.ReadReg(uint16(reg))
			if err != nil {
				return err
			}
			cmd.Printf("0x%04x = 0x%08x\n", reg, v)
			return nil
		},
	}
	cmd.Flags().StringVar(&regNum, regOptionName, "", "Register address (hexadecimal)")
	cmd.MarkFlagRequired(regOptionName)
	return cmd
}

func newRegSetCommand() *cobra.Command {
	var regNum, regValue string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set reg value",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := parseHex(regNum, 16)
			if err != nil {
				return err
			}
			val, err := parseHex(regValue, 32)
			if err != nil {
				return err
			}
			p, err := currentProfile()
			if err != nil {
				return err
			}
			dev, bus, err := p.openDev()
			if err != nil {
				return err
			}
			defer bus.Close()

			return dev.WriteReg(uint16(reg), uint32(val))
		},
	}
	cmd.Flags().StringVar(&regNum, regOptionName, "", "Register address (hexadecimal)")
	cmd.Flags().StringVar(&regValue, valOptionName, "", "Register value (hexadecimal)")
	cmd.MarkFlagRequired(regOptionName)
	cmd.MarkFlagRequired(valOptionName)
	return cmd
}
