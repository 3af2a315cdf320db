package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vantagectl",
	Short: "Vantage portfolio management server and admin tooling",
	Long:  `vantagectl runs the Vantage API server and manages its database, organizations, users and feature toggles.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
