package endpoints

import (
	"github.com/doodlesbykumbi/egeria-in-go/pkg/server"
)

// RegisterAll registers all harvester endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterRefreshEndpoint(srv)
}
