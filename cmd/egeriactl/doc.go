// Command egeriactl harvests Egeria survey reports into SQL catalog targets
// and queries the digital architecture services of an OMAG server.
//
// # Quick Start
//
//	# Create the catalog target schema
//	egeriactl db migrate
//
//	# Wait for the platform, then harvest once
//	egeriactl wait
//	egeriactl harvest run
//
//	# Keep harvesting, with status endpoints on :8080
//	egeriactl harvest serve
//
// # Environment Variables
//
//   - EGERIA_CONFIG_PATH: directory holding egeria.yml (default /etc/egeria/config)
//   - EGERIA_PLATFORM_URL, EGERIA_SERVER_NAME, EGERIA_USER_ID, EGERIA_PASSWORD
//   - DATABASE_URL: catalog target used when none are configured
//   - EGERIA_REFRESH_INTERVAL: time between harvest sweeps (default 1h)
//   - EGERIA_LOG_LEVEL: log level (debug, info, warn, error)
//
// Run "egeriactl configuration show" for the full list and where each value
// came from.
package main
