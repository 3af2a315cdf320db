// Package db opens GORM Postgres connections for the Vantage stores.
package db
