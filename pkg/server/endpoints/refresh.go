package endpoints

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/audit"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/server"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/server/middleware"
)

// RegisterRefreshEndpoint registers POST /refresh. When a refresh secret is
// configured the caller must present a bearer token signed with it.
func RegisterRefreshEndpoint(s *server.Server) {
	var handler http.Handler = handleRefresh(s)
	if s.Config != nil && s.Config.RefreshSecret != "" {
		handler = middleware.NewJWTAuthenticator(s.Config.RefreshSecret).Middleware(handler)
	}
	s.Router.Handle("/refresh", handler).Methods("POST")
}

func handleRefresh(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject := middleware.Subject(r.Context())
		s.Harvester.Trigger()
		s.Logger.Info("Refresh requested", zap.String("by", subject))
		s.Audit.Log(audit.RefreshRequestEvent{Subject: subject, ClientIP: clientIP(r)})
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "refresh scheduled"})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
