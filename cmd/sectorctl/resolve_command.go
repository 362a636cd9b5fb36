package main

import (
	"fmt"

	"github.com/shenikar/geo_sector_dispatch/internal/models"
	"github.com/spf13/cobra"
)

func newResolveCommand(flags *registryFlags) *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the sector that owns a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			point := models.GeoPoint{Latitude: lat, Longitude: lon}
			if !point.Valid() {
				return fmt.Errorf("invalid location: latitude=%v longitude=%v", lat, lon)
			}

			reg, err := flags.load(cmd, flags.permissive)
			if err != nil {
				return err
			}

			s, ok := reg.Resolve(point)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "uncovered")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.Name, s.ProviderID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
