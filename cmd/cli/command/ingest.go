package command

import (
	"fmt"

	"biteengine/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	ingestLat    float64
	ingestLng    float64
	ingestRadius int
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <query>",
	Short: "Seed the catalog from Kakao place search (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		response, err := apiClient().SearchRestaurants(client.SearchRestaurantsRequest{
			Query:  args[0],
			Lat:    ingestLat,
			Lng:    ingestLng,
			Radius: ingestRadius,
		})
		if err != nil {
			return fmt.Errorf("ingestion failed: %w", err)
		}

		if response.Message != "" {
			color.Yellow(response.Message)
		}
		fmt.Printf("Found %d, inserted %d, duplicates %d\n",
			response.TotalFound, response.Count, response.Duplicates)
		return nil
	},
}

func init() {
	// Defaults match the office search origin the server uses
	ingestCmd.Flags().Float64Var(&ingestLat, "lat", 37.4979, "search origin latitude")
	ingestCmd.Flags().Float64Var(&ingestLng, "lng", 127.0276, "search origin longitude")
	ingestCmd.Flags().IntVar(&ingestRadius, "radius", 2000, "search radius in meters")
	rootCmd.AddCommand(ingestCmd)
}
