package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/elara/elara-outfits/internal/catalog"
	"github.com/elara/elara-outfits/internal/config"
	"github.com/elara/elara-outfits/internal/db"
	"github.com/elara/elara-outfits/internal/profile"
	"github.com/elara/elara-outfits/internal/recommend"
	"github.com/elara/elara-outfits/internal/types"
	"github.com/elara/elara-outfits/internal/weather"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate outfit recommendations for an event",
	Long: `Generate ranked outfit recommendations for a single event and print them as JSON.
Runs the full engine without the HTTP server. With DATABASE_URL set the user's
stored profile is used; otherwise recommendations are generated for an
anonymous profile.`,
	RunE: runRecommend,
}

var (
	recommendConfigPath string
	recommendUserID     string
	recommendEventType  string
	recommendEventDate  string
	recommendCity       string
	recommendVenue      string
	recommendCatalog    string
	recommendMock       bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendConfigPath, "config", "c", "", "Path to JSON config file (flags override file values)")
	recommendCmd.Flags().StringVar(&recommendUserID, "user", "", "User UUID (optional)")
	recommendCmd.Flags().StringVar(&recommendEventType, "event-type", "", "Event type, e.g. dinner (required unless in config)")
	recommendCmd.Flags().StringVar(&recommendEventDate, "event-date", "", "Event date as YYYY-MM-DD (required unless in config)")
	recommendCmd.Flags().StringVar(&recommendCity, "city", "", "Event city (required unless in config)")
	recommendCmd.Flags().StringVar(&recommendVenue, "venue", "", "Venue name (optional)")
	recommendCmd.Flags().StringVar(&recommendCatalog, "catalog", "", "Path to catalog JSON (default: CATALOG_PATH env)")
	recommendCmd.Flags().BoolVar(&recommendMock, "mock-weather", false, "Use synthetic weather instead of the live API")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	fileCfg := &config.RecommendConfig{}
	if recommendConfigPath != "" {
		loaded, err := config.LoadRecommendConfig(recommendConfigPath)
		if err != nil {
			return err
		}
		fileCfg = loaded
	}

	eventType := config.MergeFlag(recommendEventType, fileCfg.EventType)
	eventDate := config.MergeFlag(recommendEventDate, fileCfg.EventDate)
	city := config.MergeFlag(recommendCity, fileCfg.City)
	venue := config.MergeFlag(recommendVenue, fileCfg.Venue)
	userIDStr := config.MergeFlag(recommendUserID, fileCfg.UserID)
	catalogPath := config.MergeFlag(recommendCatalog, fileCfg.Catalog)
	if catalogPath == "" {
		catalogPath = config.FromEnv().CatalogPath
	}

	if eventType == "" || eventDate == "" || city == "" {
		return fmt.Errorf("event-type, event-date and city are required")
	}

	date, err := time.Parse("2006-01-02", eventDate)
	if err != nil {
		return fmt.Errorf("invalid event date %q: expected YYYY-MM-DD", eventDate)
	}

	userID := uuid.Nil
	if userIDStr != "" {
		userID, err = uuid.Parse(userIDStr)
		if err != nil {
			return fmt.Errorf("invalid user ID: %w", err)
		}
	}

	ctx := context.Background()

	// Use the stored profile when a database is reachable, otherwise fall
	// back to an anonymous default profile.
	var profiles recommend.ProfileProvider = anonymousProfiles{}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" && userID != uuid.Nil {
		database, err := db.Connect(ctx, dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		profiles = profile.NewService(database)
	}

	forecasts := weather.NewClient(weather.Config{
		APIKey:  os.Getenv("WEATHER_API_KEY"),
		UseMock: recommendMock,
	}, nil)

	engine := recommend.NewEngine(profiles, forecasts, catalog.NewLoader(catalogPath), nil)
	result := engine.Generate(ctx, &types.EventContext{
		UserID:    userID,
		EventType: eventType,
		EventDate: date,
		Location:  types.Location{City: city},
		Venue:     venue,
	})

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// anonymousProfiles serves the default profile for every user.
type anonymousProfiles struct{}

func (anonymousProfiles) RecommendationProfile(_ context.Context, userID uuid.UUID) *types.RecommendationProfile {
	return types.DefaultRecommendationProfile(userID)
}
