// Package main provides the entry point for the outfit recommendation service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outfit_agent",
	Short: "Outfit recommendation HTTP API server",
	Long:  "Outfit agent recommends ranked, weather-aware outfits for an event, combining user style profiles, live forecasts and the product catalog via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
