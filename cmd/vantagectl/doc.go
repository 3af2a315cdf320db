// Package main provides the vantagectl CLI for the Vantage portfolio
// management server.
//
// Vantage is a multi-tenant backend for tracking project portfolios:
// budgets, spend, Monte Carlo schedule forecasts, anomaly detection and
// monthly status reports.
//
// # Quick Start
//
// The server is run via the vantagectl CLI:
//
//	# Set the token signing key
//	export VANTAGE_TOKEN_KEY=$(head -c 32 /dev/urandom | base64)
//
//	# Run database migrations
//	vantagectl db migrate
//
//	# Create an organization and its first admin
//	vantagectl org create acme --name "Acme Corp"
//	vantagectl user create --org acme --email admin@acme.example --role admin
//
//	# Start the server
//	vantagectl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - VANTAGE_TOKEN_KEY: HMAC key for signing auth tokens
//   - VANTAGE_CONFIG_PATH: directory holding vantage.yml (default /etc/vantage)
//   - VANTAGE_REDIS_URL: enable the Redis cache backend
//   - VANTAGE_ASSIST_URL, VANTAGE_ASSIST_MODEL, VANTAGE_ASSIST_API_KEY:
//     OpenAI-compatible help chat backend
//   - VANTAGE_LOG_LEVEL: log level (debug, info, warn, error)
//   - PORT: server port (default: 8000)
package main
