package main

import (
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/digitalarchitecture"
)

// connectionCmd represents the connection command
var connectionCmd = &cobra.Command{
	Use:   "connection [search-string]",
	Short: "Find connections",
	Long: `Find connections by regular expression, by exact name, or by GUID.

Example:
  egeriactl connection ".*postgres.*"
  egeriactl connection --name "Survey Catalog Connection"
  egeriactl connection --guid 5f1c...`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, func(q *queryEnv) (any, error) {
			if guid, _ := cmd.Flags().GetString("guid"); guid != "" {
				return digitalarchitecture.NewConnectionManager(q.client).GetConnectionByGUID(q.ctx, q.cfg.UserID, guid)
			}
			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				return findConnections(q, searchArg(args))
			}
			return digitalarchitecture.NewConnectionManager(q.client).GetConnectionsByName(q.ctx, q.cfg.UserID, name, q.startFrom, q.pageSize)
		})
	},
}

func init() {
	rootCmd.AddCommand(connectionCmd)
	connectionCmd.Flags().String("guid", "", "retrieve the connection with this GUID")
	connectionCmd.Flags().String("name", "", "retrieve connections with this exact name")
	addPagingFlags(connectionCmd)
}

func findConnections(q *queryEnv, search string) (any, error) {
	if search == "" {
		search = ".*"
	}
	return digitalarchitecture.NewConnectionManager(q.client).FindConnections(q.ctx, q.cfg.UserID, search, q.startFrom, q.pageSize)
}

// searchArg returns the search string argument, matching everything when absent
func searchArg(args []string) string {
	if len(args) == 0 {
		return ".*"
	}
	return args[0]
}
