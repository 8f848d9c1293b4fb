package main

import (
	"fmt"
	"strconv"

	"github.com/elara/elara-outfits/internal/config"
	"github.com/elara/elara-outfits/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for authentication, user profiles and outfit recommendations.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: PORT env or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if servePort != 0 {
		cfg.Port = strconv.Itoa(servePort)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	port, _ := strconv.Atoi(cfg.Port)
	srv, err := server.New(server.Config{
		Port:           port,
		DatabaseURL:    cfg.DatabaseURL,
		CatalogPath:    cfg.CatalogPath,
		CacheDir:       cfg.CacheDir,
		WeatherAPIKey:  cfg.WeatherAPIKey,
		UseMockWeather: cfg.UseMockWeather,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
