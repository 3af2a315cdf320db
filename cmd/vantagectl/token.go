package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vantagehq/vantage/pkg/config"
	"github.com/vantagehq/vantage/pkg/db"
	gormstore "github.com/vantagehq/vantage/pkg/server/store/gorm"
	"github.com/vantagehq/vantage/pkg/token"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage authorization tokens",
	Long:  `Manage signed authorization tokens.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'token' requires a subcommand (issue)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// tokenIssueCmd represents the token issue command
var tokenIssueCmd = &cobra.Command{
	Use:   "issue <org> <email>",
	Short: "Issue a signed token for a user",
	Long: `Issue a signed authorization token for a user's membership in an
organization. Requires VANTAGE_TOKEN_KEY in the environment.

The token is printed to stdout.

Example:
  vantagectl token issue acme alice@acme.example
  vantagectl token issue acme svc@acme.example --ttl 5m`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		orgSlug := args[0]
		email := args[1]
		ttl, _ := cmd.Flags().GetDuration("ttl")

		signed, err := issueToken(orgSlug, email, ttl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(signed)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenIssueCmd)
	tokenIssueCmd.Flags().Duration("ttl", 0, "Token lifetime (default: configured token_ttl)")
}

func issueToken(orgSlug, email string, ttl time.Duration) (string, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	orgs := gormstore.NewOrganizationsStore(database)
	org, err := orgs.GetOrganizationBySlug(orgSlug)
	if err != nil {
		return "", err
	}

	users := gormstore.NewUsersStore(database)
	user, err := users.GetUserByEmail(email)
	if err != nil {
		return "", err
	}
	if _, err := users.GetMembership(org.ID, user.ID); err != nil {
		return "", err
	}

	if ttl <= 0 {
		ttl = config.Get().TokenTTL()
	}

	signed, expiresAt, err := token.Issue(user.ID, org.ID, user.Email, ttl)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(os.Stderr, "Token expires at %s\n", expiresAt.Format(time.RFC3339))
	return signed, nil
}
