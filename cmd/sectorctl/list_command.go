package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newListCommand(flags *registryFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sectors in load order",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := flags.load(cmd, flags.permissive)
			if err != nil {
				return err
			}

			sectors := reg.Sectors()
			if len(sectors) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sectors defined")
				return nil
			}

			rows := make([][]string, 0, len(sectors))
			for i, s := range sectors {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					s.Name,
					s.ProviderID,
					strconv.Itoa(len(s.Boundary)),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Sector", "Provider", "Polygons"},
				rows,
				1, 4,
			))
			return nil
		},
	}
}
