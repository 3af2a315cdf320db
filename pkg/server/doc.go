// Package server provides the HTTP server for the Vantage API.
//
// This package implements the core HTTP server that handles all Vantage REST
// API requests. It uses gorilla/mux for routing and provides middleware for
// authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, cache, logger, "0.0.0.0", "8080")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds the router, the database handle, the response
// cache, and one store per resource. Endpoints only ever talk to the store
// interfaces, so tests can swap in mocks.
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers the full API surface:
//
//   - /authn/login - password authentication
//   - /whoami - token introspection
//   - /api/v1/projects - project CRUD, changes, simulation, anomalies, reports
//   - /api/v1/distribution - budget distribution suggestions and previews
//   - /api/v1/portfolio/summary - organization-wide aggregates
//   - /api/v1/assist/chat - portfolio help chat
//   - /api/features - feature toggles
//   - /api/audit - audit log listing and chain verification
package server
