package endpoints

import (
	"github.com/vantagehq/vantage/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterAuthenticateEndpoint(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterProjectsEndpoints(srv)
	RegisterChangesEndpoints(srv)
	RegisterDistributionEndpoints(srv)
	RegisterSimulationEndpoint(srv)
	RegisterAnomaliesEndpoint(srv)
	RegisterReportsEndpoints(srv)
	RegisterPortfolioEndpoint(srv)
	RegisterAssistEndpoint(srv)
	RegisterFeaturesEndpoints(srv)
	RegisterAuditEndpoints(srv)
}
