package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"solidaire/internal/config"
	"solidaire/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler, token TokenSource) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		APIBaseURL:  server.URL,
		HTTPTimeout: 5 * time.Second,
	}

	return NewClient(cfg, zerolog.Nop(), token)
}

func TestLogin_DecodesTokenAndUser(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "jwt-token",
			"user": map[string]interface{}{
				"id":         1,
				"email":      "user@example.com",
				"firstName":  "Ivan",
				"lastName":   "Petrov",
				"role":       "user",
				"isVerified": true,
			},
		})
	}).Methods(http.MethodPost)

	client := newTestClient(t, router, nil)

	response, err := client.Login(context.Background(), "user@example.com", "Secret123")

	assert.NoError(t, err)
	assert.Equal(t, "jwt-token", response.Token)
	assert.Equal(t, 1, response.User.ID)
	assert.Equal(t, models.RoleUser, response.User.Role)
	assert.True(t, response.User.IsVerified)
}

func TestDo_SendsBearerAndRequestID(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": map[string]interface{}{"id": 1, "role": "user"},
		})
	}).Methods(http.MethodGet)

	client := newTestClient(t, router, func() string { return "jwt-token" })

	user, err := client.Me(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestDo_NoAuthHeaderWithoutToken(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/campaigns", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Campaign{})
	}).Methods(http.MethodGet)

	client := newTestClient(t, router, func() string { return "" })

	_, err := client.ListCampaigns(context.Background(), 0)
	assert.NoError(t, err)
}

func TestDo_ErrorBodyDecoded(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "Доступ запрещён"})
	}).Methods(http.MethodGet)

	client := newTestClient(t, router, nil)

	_, err := client.Me(context.Background())

	assert.True(t, IsRemote(err))
	assert.True(t, IsForbidden(err))
	assert.Contains(t, err.Error(), "Доступ запрещён")
}

func TestDo_MessageFieldFallback(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Неверные учетные данные"})
	}).Methods(http.MethodPost)

	client := newTestClient(t, router, nil)

	_, err := client.Login(context.Background(), "user@example.com", "wrong")

	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "Неверные учетные данные")
}

func TestListCampaigns_LimitQuery(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/campaigns", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]models.Campaign{{ID: 1}})
	}).Methods(http.MethodGet)

	client := newTestClient(t, router, nil)

	campaigns, err := client.ListCampaigns(context.Background(), 4)

	assert.NoError(t, err)
	assert.Len(t, campaigns, 1)
}

func TestUpdateCampaignStatus_PathAndBody(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/admin/campaigns/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", mux.Vars(r)["id"])

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.StatusApproved, body["status"])

		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodPut)

	client := newTestClient(t, router, nil)

	assert.NoError(t, client.UpdateCampaignStatus(context.Background(), 7, models.StatusApproved))
}

func TestPublishMaterialDonation_Body(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/admin/material-donations/{id}/publish", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", mux.Vars(r)["id"])

		var body PublishRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ноутбук", body.Title)

		w.WriteHeader(http.StatusCreated)
	}).Methods(http.MethodPost)

	client := newTestClient(t, router, nil)

	err := client.PublishMaterialDonation(context.Background(), 5, PublishRequest{
		Title:       "Ноутбук",
		Description: "Рабочий, батарея держит",
		Category:    "Électronique",
	})
	assert.NoError(t, err)
}

func TestVerifyEmail_TokenInQuery(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/verify-email", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "verify-123", r.URL.Query().Get("token"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Email подтверждён"})
	}).Methods(http.MethodGet)

	client := newTestClient(t, router, nil)

	response, err := client.VerifyEmail(context.Background(), "verify-123")

	assert.NoError(t, err)
	assert.Equal(t, "Email подтверждён", response.Message)
}

func TestDo_ContextCancelled(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/campaigns", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Campaign{})
	}).Methods(http.MethodGet)

	client := newTestClient(t, router, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListCampaigns(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsRemote(err))
}
