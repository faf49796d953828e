package main

import (
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/digitalarchitecture"
)

// templateCmd represents the template command
var templateCmd = &cobra.Command{
	Use:   "template [search-string]",
	Short: "Find templates",
	Long: `Find templates by regular expression, or list the catalog templates
linked to an element.

Example:
  egeriactl template "PostgreSQL.*"
  egeriactl template --catalog-templates-of 7d2b...`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, func(q *queryEnv) (any, error) {
			m := digitalarchitecture.NewTemplateManager(q.client)
			if elem, _ := cmd.Flags().GetString("catalog-templates-of"); elem != "" {
				return m.GetCatalogTemplates(q.ctx, q.cfg.UserID, elem, q.startFrom, q.pageSize)
			}
			return m.FindTemplates(q.ctx, q.cfg.UserID, searchArg(args), q.startFrom, q.pageSize)
		})
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.Flags().String("catalog-templates-of", "", "list the catalog templates linked to this element")
	addPagingFlags(templateCmd)
}
