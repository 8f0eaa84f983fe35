package command

import (
	"fmt"

	"biteengine/cmd/cli/authentication"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loginName string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in with your team email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		response, err := apiClient().Login(args[0], loginName)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		err = authentication.StoreCredentials(&authentication.StoredCredentials{
			Token: response.Token,
			Email: response.User.Email,
			Name:  response.User.Name,
			Role:  response.User.Role,
		})
		if err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}

		color.Green("Logged in as %s (%s)", response.User.Name, response.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteCredentials(); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginName, "name", "", "display name (defaults to the email local part)")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
