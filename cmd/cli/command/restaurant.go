package command

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var restaurantsCmd = &cobra.Command{
	Use:   "restaurants",
	Short: "List candidate restaurants with live vote tallies",
	RunE: func(cmd *cobra.Command, args []string) error {
		restaurants, err := apiClient().GetRestaurants()
		if err != nil {
			return fmt.Errorf("failed to fetch restaurants: %w", err)
		}

		if len(restaurants) == 0 {
			fmt.Println("No restaurants yet. Ask an admin to run `bite ingest`.")
			return nil
		}

		for _, r := range restaurants {
			votes := color.GreenString("%d/%d votes", r.Votes, r.TotalVoters)
			fmt.Printf("%s  %s  %s\n", color.New(color.Bold).Sprint(r.Name), votes, color.HiBlackString(r.ID))
			fmt.Printf("    %s · %.1f★ · %s · %s\n", r.Cuisine, r.Rating, r.Distance, r.PriceRange)
			if len(r.Badges) > 0 {
				fmt.Printf("    %s\n", color.YellowString(strings.Join(r.Badges, " · ")))
			}
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show vote totals and the current leader",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := apiClient().GetStats()
		if err != nil {
			return fmt.Errorf("failed to fetch stats: %w", err)
		}

		if stats.RestaurantCount == 0 {
			fmt.Println("The catalog is empty.")
			return nil
		}

		fmt.Printf("Restaurants: %d, votes cast: %d\n", stats.RestaurantCount, stats.TotalVotes)
		if stats.TotalVotes == 0 {
			fmt.Println("Nobody has voted yet.")
			return nil
		}
		if stats.Leader != nil {
			color.Green("Leading: %s (%d votes)", stats.Leader.Name, stats.Leader.Votes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restaurantsCmd)
	rootCmd.AddCommand(statsCmd)
}
