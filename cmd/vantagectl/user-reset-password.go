package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/vantagehq/vantage/pkg/db"
	gormstore "github.com/vantagehq/vantage/pkg/server/store/gorm"
)

// userResetPasswordCmd represents the user reset-password command
var userResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <email>",
	Short: "Reset a user's password",
	Long: `Reset the password for a user.

The new password is generated and printed to stdout. Any tokens already
issued stay valid until they expire.

Example:
  vantagectl user reset-password alice@acme.example`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		email := args[0]

		password, err := resetPassword(email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reset password for %s: %v\n", email, err)
			os.Exit(1)
		}
		fmt.Println(password)
	},
}

func init() {
	userCmd.AddCommand(userResetPasswordCmd)
}

func resetPassword(email string) (string, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	password, err := generatePassword()
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	users := gormstore.NewUsersStore(database)
	if err := users.UpdatePassword(email, string(digest)); err != nil {
		return "", err
	}

	return password, nil
}
