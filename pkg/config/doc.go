// Package config loads Vantage settings from /etc/vantage/vantage.yml (or
// VANTAGE_CONFIG_PATH) with VANTAGE_* environment overrides, recording the
// source of each attribute.
package config
