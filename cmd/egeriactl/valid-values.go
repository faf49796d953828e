package main

import (
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/digitalarchitecture"
)

// validValuesCmd represents the valid-values command
var validValuesCmd = &cobra.Command{
	Use:   "valid-values <property-name>",
	Short: "List the valid values of an open metadata property",
	Long: `List the values an open metadata property may take. Without --type the
values that apply to every type with the property are listed.

Example:
  egeriactl valid-values fileType
  egeriactl valid-values deployedImplementationType --type SoftwareServer`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, func(q *queryEnv) (any, error) {
			typeName, _ := cmd.Flags().GetString("type")
			m := digitalarchitecture.NewValidValuesManager(q.client)
			return m.GetValidMetadataValues(q.ctx, q.cfg.UserID, typeName, args[0], q.startFrom, q.pageSize)
		})
	},
}

func init() {
	rootCmd.AddCommand(validValuesCmd)
	validValuesCmd.Flags().String("type", "", "open metadata type the values apply to")
	addPagingFlags(validValuesCmd)
}
