// Package server provides the HTTP surface of a running harvester.
//
// It uses gorilla/mux for routing and logs every request through
// gorilla/handlers.
//
// # Server Setup
//
//	srv := server.NewServer(connector, cfg, logger, ":8080")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    return err
//	}
//
// # Endpoints
//
//   - GET / - liveness and version
//   - GET /status - per catalog target status of the last sweep
//   - POST /refresh - request an immediate sweep
package server
