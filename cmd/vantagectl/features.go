package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// featuresCmd represents the features command
var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Manage feature toggles",
	Long:  `Manage per-organization feature toggles.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'features' requires a subcommand (load, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}
