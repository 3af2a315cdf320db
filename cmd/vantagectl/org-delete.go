package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vantagehq/vantage/pkg/db"
	gormstore "github.com/vantagehq/vantage/pkg/server/store/gorm"
)

// orgDeleteCmd represents the org delete command
var orgDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete an organization",
	Long: `Delete an organization and all its associated data.

This command deletes the organization's projects, budget changes,
reports, feature toggles, memberships and audit trail.

Example:
  vantagectl org delete acme`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		slug := args[0]

		if err := deleteOrganization(slug); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete organization: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Deleted organization '%s'\n", slug)
	},
}

func init() {
	orgCmd.AddCommand(orgDeleteCmd)
}

func deleteOrganization(slug string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	orgs := gormstore.NewOrganizationsStore(database)
	return orgs.DeleteOrganization(slug)
}
