// Package digitalarchitecture provides clients for the Digital Architecture
// Open Metadata Access Service (OMAS) of an Egeria metadata server.
//
// Each manager covers one family of elements:
//
//   - ConnectionManager: connections, connector types and endpoints
//   - LocationManager: locations and their nesting, adjacency and classifications
//   - ReferenceDataManager: valid value sets, definitions and reference values
//   - ValidValuesManager: valid values for open metadata properties
//   - SolutionManager: information supply chains, blueprints and components
//   - TemplateManager: templates and elements created from them
//
// Every method checks its parameters before making a request, so an
// *rest.InvalidParameterError can be returned without any traffic to the
// server. Managers share a *rest.Client and are safe for concurrent use.
//
// # Usage
//
//	client, err := rest.NewClient("https://localhost:9443", "cocoMDS1")
//	if err != nil {
//	    return err
//	}
//	connections := digitalarchitecture.NewConnectionManager(client)
//	found, err := connections.FindConnections(ctx, "erinoverview", ".*postgres.*", 0, 50)
package digitalarchitecture
