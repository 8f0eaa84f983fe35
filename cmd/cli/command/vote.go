package command

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var voteCmd = &cobra.Command{
	Use:   "vote <restaurant-name>",
	Short: "Cast (or change) your vote for a restaurant by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := apiClient()
		name := args[0]

		// Resolve the name against the catalog so the activity entry can
		// carry the display name
		restaurants, err := api.GetRestaurants()
		if err != nil {
			return fmt.Errorf("failed to fetch restaurants: %w", err)
		}

		for _, r := range restaurants {
			if r.Name == name {
				if err := api.CastVote(r.ID, r.Name); err != nil {
					return fmt.Errorf("vote failed: %w", err)
				}
				color.Green("Voted for %s", r.Name)
				return nil
			}
		}

		return fmt.Errorf("no restaurant named %q in the catalog", name)
	},
}

var unvoteCmd = &cobra.Command{
	Use:   "unvote",
	Short: "Retract your vote",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := apiClient().RetractVote(); err != nil {
			return fmt.Errorf("failed to retract vote: %w", err)
		}
		fmt.Println("Vote retracted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(voteCmd)
	rootCmd.AddCommand(unvoteCmd)
}
