package test

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"solidaire/internal/api"
	"solidaire/internal/cache"
	"solidaire/internal/forms"
	"solidaire/internal/models"
	"solidaire/internal/query"
)

func newQueries() *query.Client {
	return query.NewClient(cache.NewMemory(), time.Minute, zerolog.Nop())
}

func newForms() *forms.Validator {
	return forms.NewValidator()
}

// fakeSession - простая замена сессии для проверки гейтинга страниц
type fakeSession struct {
	user *models.User
}

func (s *fakeSession) IsAuthenticated() bool {
	return s.user != nil
}

func (s *fakeSession) IsAdmin() bool {
	return s.user != nil && s.user.Role == models.RoleAdmin
}

func (s *fakeSession) User() *models.User {
	return s.user
}

func anonymousSession() *fakeSession {
	return &fakeSession{}
}

func userSession() *fakeSession {
	return &fakeSession{user: &models.User{ID: 1, Role: models.RoleUser}}
}

func adminSession() *fakeSession {
	return &fakeSession{user: &models.User{ID: 2, Role: models.RoleAdmin}}
}

type MockCampaignsAPI struct {
	mock.Mock
}

func (m *MockCampaignsAPI) ListCampaigns(ctx context.Context, limit int) ([]models.Campaign, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Campaign), args.Error(1)
}

func (m *MockCampaignsAPI) GetCampaign(ctx context.Context, campaignID int) (*models.Campaign, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignsAPI) InitiateDonation(ctx context.Context, req api.DonationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockBoutiqueAPI struct {
	mock.Mock
}

func (m *MockBoutiqueAPI) ListBoutiqueItems(ctx context.Context, q api.ItemsQuery) ([]models.BoutiqueItem, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BoutiqueItem), args.Error(1)
}

func (m *MockBoutiqueAPI) CreateOrder(ctx context.Context, req api.OrderRequest) (*models.BoutiqueOrder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BoutiqueOrder), args.Error(1)
}

type MockAdminAPI struct {
	mock.Mock
}

func (m *MockAdminAPI) PendingCampaigns(ctx context.Context) ([]models.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Campaign), args.Error(1)
}

func (m *MockAdminAPI) UpdateCampaignStatus(ctx context.Context, campaignID int, status string) error {
	args := m.Called(ctx, campaignID, status)
	return args.Error(0)
}

func (m *MockAdminAPI) PendingMaterialDonations(ctx context.Context) ([]models.MaterialDonation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaterialDonation), args.Error(1)
}

func (m *MockAdminAPI) PublishMaterialDonation(ctx context.Context, donationID int, req api.PublishRequest) error {
	args := m.Called(ctx, donationID, req)
	return args.Error(0)
}

func (m *MockAdminAPI) UpdateMaterialDonationStatus(ctx context.Context, donationID int, status string) error {
	args := m.Called(ctx, donationID, status)
	return args.Error(0)
}

func (m *MockAdminAPI) PendingOrders(ctx context.Context) ([]models.BoutiqueOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BoutiqueOrder), args.Error(1)
}

func (m *MockAdminAPI) UpdateOrderStatus(ctx context.Context, orderID int, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}
