package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/vantagehq/vantage/pkg/db"
	"github.com/vantagehq/vantage/pkg/model"
	gormstore "github.com/vantagehq/vantage/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user and their organization membership",
	Long: `Create a user and add them to an organization.

If no password is given, a random one is generated and printed to STDOUT.

Example:
  vantagectl user create --org acme --email alice@acme.example
  vantagectl user create --org acme --email admin@acme.example --role admin`,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		displayName, _ := cmd.Flags().GetString("name")
		orgSlug, _ := cmd.Flags().GetString("org")
		role, _ := cmd.Flags().GetString("role")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || orgSlug == "" {
			fmt.Fprintln(os.Stderr, "--email and --org are required")
			os.Exit(1)
		}
		if !model.RoleAtLeast(role, model.RoleViewer) {
			fmt.Fprintf(os.Stderr, "Unknown role %q (viewer, manager, admin)\n", role)
			os.Exit(1)
		}

		generated := password == ""
		if generated {
			var err error
			password, err = generatePassword()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to generate password: %v\n", err)
				os.Exit(1)
			}
		}

		if err := createUser(email, displayName, orgSlug, role, password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created user '%s' in organization '%s' with role '%s'\n", email, orgSlug, role)
		if generated {
			fmt.Printf("Password for %s: %s\n", email, password)
		}
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().StringP("email", "e", "", "User email (required)")
	userCreateCmd.Flags().StringP("name", "n", "", "Display name")
	userCreateCmd.Flags().StringP("org", "o", "", "Organization slug (required)")
	userCreateCmd.Flags().StringP("role", "r", model.RoleViewer, "Role in the organization (viewer, manager, admin)")
	userCreateCmd.Flags().String("password", "", "Password (default: generated)")
}

func generatePassword() (string, error) {
	raw := make([]byte, 18)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

func createUser(email, displayName, orgSlug, role, password string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	orgs := gormstore.NewOrganizationsStore(database)
	org, err := orgs.GetOrganizationBySlug(orgSlug)
	if err != nil {
		return err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	users := gormstore.NewUsersStore(database)
	_, err = users.CreateUser(email, displayName, string(digest), org.ID, role)
	return err
}
