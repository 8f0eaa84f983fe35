package command

// root.go defines the root command for the bite CLI.
// Global flags and shared client construction live here.

import (
	"fmt"
	"os"

	"biteengine/cmd/cli/authentication"
	"biteengine/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var (
	apiURL string // Global flag for API server URL
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bite",
	Short: "bite - team dinner voting from the terminal",
	Long: `bite is a command line client for the bite-engine dinner voting API.
Use it to:
- Log in with your team email
- Browse candidate restaurants and live vote tallies
- Cast, change or retract your vote
- Tail the live activity feed
- (admins) Seed the catalog from Kakao place search

Use "bite <command> -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")
}

// apiClient builds an HTTP client carrying the stored token, if any
func apiClient() *client.HTTPClient {
	token := ""
	if creds, err := authentication.GetCredentials(); err == nil {
		token = creds.Token
	}
	return client.NewHTTPClient(apiURL, token)
}
