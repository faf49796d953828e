package main

import (
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/digitalarchitecture"
)

// locationCmd represents the location command
var locationCmd = &cobra.Command{
	Use:   "location [search-string]",
	Short: "Find locations",
	Long: `Find locations by regular expression or GUID, or list the locations
nested within a location or linked to an asset.

Example:
  egeriactl location "Data Centre.*"
  egeriactl location --nested-in 2c3a...
  egeriactl location --asset 9e1f...`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, func(q *queryEnv) (any, error) {
			m := digitalarchitecture.NewLocationManager(q.client)
			if guid, _ := cmd.Flags().GetString("guid"); guid != "" {
				return m.GetLocationByGUID(q.ctx, q.cfg.UserID, guid)
			}
			if parent, _ := cmd.Flags().GetString("nested-in"); parent != "" {
				return m.GetNestedLocations(q.ctx, q.cfg.UserID, parent, q.startFrom, q.pageSize)
			}
			if asset, _ := cmd.Flags().GetString("asset"); asset != "" {
				return m.GetAssetLocations(q.ctx, q.cfg.UserID, asset, q.startFrom, q.pageSize)
			}
			return m.FindLocations(q.ctx, q.cfg.UserID, searchArg(args), q.startFrom, q.pageSize)
		})
	},
}

func init() {
	rootCmd.AddCommand(locationCmd)
	locationCmd.Flags().String("guid", "", "retrieve the location with this GUID")
	locationCmd.Flags().String("nested-in", "", "list locations nested in this location")
	locationCmd.Flags().String("asset", "", "list locations of this asset")
	addPagingFlags(locationCmd)
}
