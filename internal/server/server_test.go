package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elara/elara-outfits/internal/config"
	"github.com/elara/elara-outfits/internal/db"
	"github.com/elara/elara-outfits/internal/profile"
	"github.com/elara/elara-outfits/internal/recommend"
	"github.com/elara/elara-outfits/internal/server/ratelimit"
	"github.com/elara/elara-outfits/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory implementation of UserStore and ProfileStore.
type memStore struct {
	users       map[uuid.UUID]*db.User
	byEmail     map[string]uuid.UUID
	preferences map[uuid.UUID]*db.StylePreferences
	closets     map[uuid.UUID][]db.ClosetItem
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[uuid.UUID]*db.User),
		byEmail:     make(map[string]uuid.UUID),
		preferences: make(map[uuid.UUID]*db.StylePreferences),
		closets:     make(map[uuid.UUID][]db.ClosetItem),
	}
}

func (m *memStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memStore) CreateUser(_ context.Context, email, firstName, lastName string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	m.users[id] = &db.User{
		ID: id, Email: email, FirstName: firstName, LastName: lastName,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	m.byEmail[email] = id
	return id, nil
}

func (m *memStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := m.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func (m *memStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return m.users[userID], nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	id, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	return m.users[id], nil
}

func (m *memStore) GetStylePreferences(_ context.Context, userID uuid.UUID) (*db.StylePreferences, error) {
	return m.preferences[userID], nil
}

func (m *memStore) UpsertStylePreferences(_ context.Context, prefs *db.StylePreferences) error {
	m.preferences[prefs.UserID] = prefs
	return nil
}

func (m *memStore) AddClosetItem(_ context.Context, item *db.ClosetItem) (*db.ClosetItem, error) {
	stored := *item
	stored.ID = uuid.New()
	stored.AddedAt = time.Now()
	m.closets[item.UserID] = append(m.closets[item.UserID], stored)
	return &stored, nil
}

func (m *memStore) ListClosetItems(_ context.Context, userID uuid.UUID) ([]db.ClosetItem, error) {
	return m.closets[userID], nil
}

// Fixed collaborators for the engine.

type fixedWeather struct{}

func (fixedWeather) Forecast(context.Context, types.Location, time.Time) *types.WeatherForecast {
	return &types.WeatherForecast{
		Temperature: 22,
		Condition:   types.ConditionSunny,
		Description: "clear sky",
		IsMock:      true,
	}
}

type fixedCatalog struct{}

func (fixedCatalog) AvailableProducts(context.Context, string, time.Time) []types.Product {
	return []types.Product{
		{ID: "p1", Category: "shirt", Color: "white", Fabric: "cotton", InStock: true},
		{ID: "p2", Category: "chinos", Color: "beige", Fabric: "cotton", InStock: true},
		{ID: "p3", Category: "loafers", Color: "brown", InStock: true},
	}
}

func newTestServer(_ *testing.T) (*Server, *memStore) {
	store := newMemStore()
	profiles := profile.NewService(store)

	s := &Server{
		profiles:     profiles,
		profileStore: store,
		rateLimiter:  ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
		jwtService:   NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1}),
		engine:       recommend.NewEngine(profiles, fixedWeather{}, fixedCatalog{}, nil),
	}
	s.userService = NewUserService(store, &config.PasswordConfig{BcryptCost: 10})
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	s.httpServer = &http.Server{Handler: s.withRateLimit(s.withLogging(s.withCORS(s.routes())))}
	return s, store
}

func (s *Server) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func registerTestUser(t *testing.T, s *Server, email string) (uuid.UUID, string) {
	t.Helper()
	w := s.do(http.MethodPost, "/auth/register", "", types.RegisterRequest{
		Email: email, Password: "password123", FirstName: "Test", LastName: "User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.User.ID, resp.Token
}

func TestRegisterAndLogin(t *testing.T) {
	s, _ := newTestServer(t)

	userID, token := registerTestUser(t, s, "ana@example.com")
	assert.NotEqual(t, uuid.Nil, userID)
	assert.NotEmpty(t, token)

	// Duplicate registration conflicts
	w := s.do(http.MethodPost, "/auth/register", "", types.RegisterRequest{
		Email: "ana@example.com", Password: "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login with the right password
	w = s.do(http.MethodPost, "/auth/login", "", types.LoginRequest{
		Email: "ana@example.com", Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.User.ID)
	assert.NotContains(t, w.Body.String(), "password_hash")

	// Wrong password gets the generic message
	w = s.do(http.MethodPost, "/auth/login", "", types.LoginRequest{
		Email: "ana@example.com", Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestRegister_ValidationErrors(t *testing.T) {
	s, _ := newTestServer(t)

	// Short password
	w := s.do(http.MethodPost, "/auth/register", "", types.RegisterRequest{
		Email: "short@example.com", Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad email
	w = s.do(http.MethodPost, "/auth/register", "", types.RegisterRequest{
		Email: "not-an-email", Password: "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout(t *testing.T) {
	s, _ := newTestServer(t)

	w := s.do(http.MethodPost, "/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out")
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	w := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestAuthRequired(t *testing.T) {
	s, _ := newTestServer(t)
	userID := uuid.New()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/recommendations"},
		{http.MethodGet, fmt.Sprintf("/users/%s/profile", userID)},
		{http.MethodPut, fmt.Sprintf("/users/%s/preferences", userID)},
		{http.MethodPost, fmt.Sprintf("/users/%s/closet", userID)},
		{http.MethodGet, fmt.Sprintf("/users/%s/recommendation-profile", userID)},
	}
	for _, p := range paths {
		w := s.do(p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestUserCannotTouchOtherUsersData(t *testing.T) {
	s, _ := newTestServer(t)
	_, token := registerTestUser(t, s, "a@example.com")
	otherID, _ := registerTestUser(t, s, "b@example.com")

	w := s.do(http.MethodGet, fmt.Sprintf("/users/%s/profile", otherID), token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPreferencesAndClosetFlow(t *testing.T) {
	s, _ := newTestServer(t)
	userID, token := registerTestUser(t, s, "flow@example.com")
	base := fmt.Sprintf("/users/%s", userID)

	// Save preferences
	w := s.do(http.MethodPut, base+"/preferences", token, types.UpdatePreferencesRequest{
		Colors: []string{"black"}, Styles: []string{"minimal"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Update only colors; styles stay
	w = s.do(http.MethodPut, base+"/preferences", token, map[string]any{
		"colors": []string{"black", "navy"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Add a closet item
	w = s.do(http.MethodPost, base+"/closet", token, types.AddClosetItemRequest{
		Category: "top", Color: "white", Brand: "Everlane",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Missing category is rejected
	w = s.do(http.MethodPost, base+"/closet", token, types.AddClosetItemRequest{Color: "red"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Profile reflects both
	w = s.do(http.MethodGet, base+"/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Preferences *db.StylePreferences `json:"preferences"`
			ClosetItems []db.ClosetItem      `json:"closet_items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Data.Preferences)
	assert.Equal(t, db.StringArray{"black", "navy"}, envelope.Data.Preferences.Colors)
	assert.Equal(t, db.StringArray{"minimal"}, envelope.Data.Preferences.Styles)
	require.Len(t, envelope.Data.ClosetItems, 1)
	assert.Equal(t, "top", envelope.Data.ClosetItems[0].Category)

	// The aggregated recommendation profile sees the same data
	w = s.do(http.MethodGet, base+"/recommendation-profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profEnvelope struct {
		Data types.RecommendationProfile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profEnvelope))
	assert.Equal(t, types.ProfileFound, profEnvelope.Data.Source)
	assert.Equal(t, []string{"black", "navy"}, profEnvelope.Data.Preferences.Colors)
	assert.Equal(t, 1, profEnvelope.Data.ClosetSummary.TotalItems)
}

func TestRecommend(t *testing.T) {
	s, _ := newTestServer(t)
	_, token := registerTestUser(t, s, "rec@example.com")

	w := s.do(http.MethodPost, "/recommendations", token, types.RecommendRequest{
		EventType: "dinner",
		EventDate: time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC),
		Location:  &types.Location{City: "Paris"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var envelope struct {
		Success bool                          `json:"success"`
		Data    types.RecommendationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "dinner", envelope.Data.EventContext.Type)
	assert.Equal(t, "Paris", envelope.Data.EventContext.Location)
	assert.Equal(t, types.VibeSmartCasual, envelope.Data.EventContext.Vibe)
	assert.InDelta(t, 22.0, envelope.Data.Weather.Temperature, 0.001)
	assert.NotEmpty(t, envelope.Data.Outfits)
	assert.False(t, envelope.Data.GeneratedAt.IsZero())
}

func TestRecommend_MissingFields(t *testing.T) {
	s, _ := newTestServer(t)
	_, token := registerTestUser(t, s, "bad@example.com")

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing event type", body: map[string]any{
			"event_date": "2026-09-12T19:00:00Z", "location": map[string]string{"city": "Paris"},
		}},
		{name: "missing event date", body: map[string]any{
			"event_type": "dinner", "location": map[string]string{"city": "Paris"},
		}},
		{name: "missing location", body: map[string]any{
			"event_type": "dinner", "event_date": "2026-09-12T19:00:00Z",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/recommendations", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRateLimitResponse(t *testing.T) {
	s, _ := newTestServer(t)
	s.rateLimiter.Stop()
	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []ratelimit.EndpointConfig{
			{Path: "/auth/login", Method: "POST", Limit: 1, Window: time.Hour, Burst: 1},
		},
	})
	defer s.rateLimiter.Stop()
	s.httpServer.Handler = s.withRateLimit(s.withLogging(s.withCORS(s.routes())))

	body := types.LoginRequest{Email: "x@example.com", Password: "password123"}
	w := s.do(http.MethodPost, "/auth/login", "", body)
	assert.NotEqual(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = s.do(http.MethodPost, "/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
