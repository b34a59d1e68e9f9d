package main

import (
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

const outOptionName = "out"

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Work with panel profile files",
	}
	cmd.AddCommand(newConfigInitCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the selected panel preset as a yaml profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := currentProfile()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(p)
			if err != nil {
				return err
			}
			if out == "" {
				cmd.Print(string(data))
				return nil
			}
			return os.WriteFile(out, data, 0644)
		},
	}
	cmd.Flags().StringVar(&out, outOptionName, "", "Output file (default: stdout)")
	return cmd
}
