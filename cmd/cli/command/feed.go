package command

import (
	"fmt"

	"biteengine/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var feedFollow bool

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show recent vote activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if feedFollow {
			return client.TailFeed(apiURL)
		}

		activities, err := apiClient().GetActivities()
		if err != nil {
			return fmt.Errorf("failed to fetch activities: %w", err)
		}
		if len(activities) == 0 {
			fmt.Println("No activity yet.")
			return nil
		}
		for _, a := range activities {
			fmt.Printf("%s  %s %s %s\n",
				a.Timestamp.Format("15:04:05"), a.User, a.Action, a.Restaurant)
		}
		return nil
	},
}

func init() {
	feedCmd.Flags().BoolVarP(&feedFollow, "follow", "f", false, "stay connected and stream new entries")
	rootCmd.AddCommand(feedCmd)
}
