package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vantagehq/vantage/pkg/db"
	gormstore "github.com/vantagehq/vantage/pkg/server/store/gorm"
)

// orgCreateCmd represents the org create command
var orgCreateCmd = &cobra.Command{
	Use:   "create <slug>",
	Short: "Create an organization",
	Long: `Create an organization.

The slug becomes the stable identifier users log in with. The display
name defaults to the slug.

Example:
  vantagectl org create acme
  vantagectl org create acme --name "Acme Corp"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		slug := args[0]
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = slug
		}

		if err := createOrganization(slug, name); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create organization: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created organization '%s'\n", slug)
	},
}

func init() {
	orgCmd.AddCommand(orgCreateCmd)
	orgCreateCmd.Flags().StringP("name", "n", "", "Display name (default: slug)")
}

func createOrganization(slug, name string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	orgs := gormstore.NewOrganizationsStore(database)
	org, err := orgs.CreateOrganization(slug, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Organization ID: %s\n", org.ID)
	return nil
}
