// Package model contains the GORM models backing the Vantage schema.
package model
