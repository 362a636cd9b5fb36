package main

import (
	"errors"

	"github.com/shenikar/geo_sector_dispatch/internal/sector"
	"github.com/shenikar/geo_sector_dispatch/pkg/logger"
	"github.com/spf13/cobra"
)

// registryFlags - общие флаги загрузки набора границ
type registryFlags struct {
	boundaries       string
	sectorProperty   string
	providerProperty string
	permissive       bool
}

func (f *registryFlags) load(cmd *cobra.Command, permissive bool) (*sector.Registry, error) {
	if f.boundaries == "" {
		return nil, errors.New("--boundaries is required")
	}
	return sector.LoadFile(f.boundaries, sector.LoadOptions{
		SectorProperty:   f.sectorProperty,
		ProviderProperty: f.providerProperty,
		Permissive:       permissive,
		Logger:           logger.NewWithOutput("warn", "text", cmd.ErrOrStderr()),
	})
}

func newRootCommand() *cobra.Command {
	flags := &registryFlags{}

	rootCmd := &cobra.Command{
		Use:           "sectorctl",
		Short:         "Inspect sector boundary datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.boundaries, "boundaries", "b", "", "GeoJSON FeatureCollection with sector boundaries")
	rootCmd.PersistentFlags().StringVar(&flags.sectorProperty, "sector-property", sector.DefaultSectorProperty, "Feature property holding the sector name")
	rootCmd.PersistentFlags().StringVar(&flags.providerProperty, "provider-property", sector.DefaultProviderProperty, "Feature property holding the provider id")
	rootCmd.PersistentFlags().BoolVar(&flags.permissive, "permissive", false, "Skip malformed features instead of failing")

	rootCmd.AddCommand(newListCommand(flags))
	rootCmd.AddCommand(newResolveCommand(flags))
	rootCmd.AddCommand(newValidateCommand(flags))

	return rootCmd
}
