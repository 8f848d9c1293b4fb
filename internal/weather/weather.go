// Package weather provides the forecast collaborator for the recommendation
// engine. It fetches forecasts from WeatherAPI.com and substitutes synthetic
// seasonal data when the upstream call fails or mock mode is enabled, so
// callers always receive a structurally valid forecast.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/elara/elara-outfits/internal/cache"
	"github.com/elara/elara-outfits/internal/metrics"
	"github.com/elara/elara-outfits/internal/types"
)

const (
	defaultBaseURL = "https://api.weatherapi.com/v1"

	// requestTimeout bounds the upstream call; on expiry the client falls
	// back to mock data instead of propagating the failure.
	requestTimeout = 5 * time.Second

	// forecastTTL is how long forecasts stay cached.
	forecastTTL = 6 * time.Hour

	forecastDays = 3
)

// Config holds the weather client configuration.
type Config struct {
	APIKey  string
	BaseURL string // defaults to the WeatherAPI.com endpoint
	UseMock bool   // skip the upstream entirely and serve synthetic data
}

// Client fetches weather forecasts. The zero value is not usable; construct
// with NewClient.
type Client struct {
	apiKey  string
	baseURL string
	useMock bool
	httpc   *http.Client
	store   *cache.Store
}

// NewClient creates a weather client. A nil store disables forecast caching.
func NewClient(cfg Config, store *cache.Store) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		useMock: cfg.UseMock,
		httpc:   &http.Client{Timeout: requestTimeout},
		store:   store,
	}
}

// Forecast returns the forecast for a city and date. It never fails: upstream
// errors, timeouts and a missing API key all degrade to the mock forecast.
func (c *Client) Forecast(ctx context.Context, loc types.Location, date time.Time) *types.WeatherForecast {
	key := fmt.Sprintf("weather:%s:%s", loc.City, date.Format("2006-01-02"))

	if c.store != nil {
		var cached types.WeatherForecast
		if found, err := c.store.Get(key, &cached); err == nil && found {
			return &cached
		}
	}

	var forecast *types.WeatherForecast
	if c.useMock || c.apiKey == "" {
		forecast = MockForecast(loc, date)
	} else {
		live, err := c.fetchLive(ctx, loc, date)
		if err != nil {
			log.Printf("[weather] live fetch failed, using mock: %v", err)
			metrics.WeatherFallbacksTotal.Inc()
			forecast = MockForecast(loc, date)
		} else {
			forecast = live
		}
	}

	if c.store != nil {
		if err := c.store.SetWithTTL(key, forecast, forecastTTL); err != nil {
			log.Printf("[weather] cache write ignored: %v", err)
		}
	}

	return forecast
}

// apiCondition is the condition block of a WeatherAPI.com response.
type apiCondition struct {
	Text string `json:"text"`
	Code int    `json:"code"`
}

// apiResponse covers the subset of the WeatherAPI.com forecast payload we read.
type apiResponse struct {
	Current struct {
		TempC     float64      `json:"temp_c"`
		Humidity  float64      `json:"humidity"`
		WindKph   float64      `json:"wind_kph"`
		Condition apiCondition `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				AvgTempC          float64      `json:"avgtemp_c"`
				AvgHumidity       float64      `json:"avghumidity"`
				MaxWindKph        float64      `json:"maxwind_kph"`
				DailyChanceOfRain float64      `json:"daily_chance_of_rain"`
				Condition         apiCondition `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// fetchLive calls the WeatherAPI.com forecast endpoint and picks the entry
// matching the event date, falling back to current conditions when the date
// is outside the forecast window.
func (c *Client) fetchLive(ctx context.Context, loc types.Location, date time.Time) (*types.WeatherForecast, error) {
	endpoint := fmt.Sprintf("%s/forecast.json?%s", c.baseURL, url.Values{
		"key":  {c.apiKey},
		"q":    {loc.City},
		"days": {fmt.Sprintf("%d", forecastDays)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}

	target := date.Format("2006-01-02")
	for _, day := range payload.Forecast.ForecastDay {
		if day.Date == target {
			return &types.WeatherForecast{
				Temperature:   day.Day.AvgTempC,
				Condition:     mapConditionCode(day.Day.Condition.Code),
				Description:   day.Day.Condition.Text,
				Precipitation: day.Day.DailyChanceOfRain,
				Humidity:      day.Day.AvgHumidity,
				WindSpeed:     day.Day.MaxWindKph,
				IsMock:        false,
			}, nil
		}
	}

	// Event date beyond the forecast window: use current conditions.
	return &types.WeatherForecast{
		Temperature: payload.Current.TempC,
		Condition:   mapConditionCode(payload.Current.Condition.Code),
		Description: payload.Current.Condition.Text,
		Humidity:    payload.Current.Humidity,
		WindSpeed:   payload.Current.WindKph,
		IsMock:      false,
	}, nil
}
