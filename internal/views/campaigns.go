package views

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"solidaire/internal/api"
	"solidaire/internal/cache"
	"solidaire/internal/forms"
	"solidaire/internal/models"
	"solidaire/internal/query"
)

// Сортировки списка кампаний
const (
	SortRecent   = "recent"
	SortProgress = "progress"
	SortAmount   = "amount"
)

var campaignsKey = cache.NewKey("/api/campaigns")

type CampaignsAPI interface {
	ListCampaigns(ctx context.Context, limit int) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, campaignID int) (*models.Campaign, error)
	InitiateDonation(ctx context.Context, req api.DonationRequest) error
}

// CampaignsView - страница со всеми кампаниями: поиск, фильтр по категории,
// сортировка поверх уже загруженного списка
type CampaignsView struct {
	View
	api     CampaignsAPI
	queries *query.Client
	forms   *forms.Validator
}

func NewCampaignsView(parent context.Context, remote CampaignsAPI, queries *query.Client, validator *forms.Validator) *CampaignsView {
	return &CampaignsView{
		View:    newView(parent),
		api:     remote,
		queries: queries,
		forms:   validator,
	}
}

type CampaignFilter struct {
	Search   string
	Category string
	SortBy   string
}

func (v *CampaignsView) Campaigns(filter CampaignFilter) ([]models.Campaign, error) {
	campaigns, err := query.Fetch(v.ctx, v.queries, campaignsKey, func(ctx context.Context) ([]models.Campaign, error) {
		return v.api.ListCampaigns(ctx, 0)
	})
	if err != nil {
		return nil, err
	}

	filtered := filterCampaigns(campaigns, filter)
	sortCampaigns(filtered, filter.SortBy)
	return filtered, nil
}

// Campaign загружает одну кампанию для страницы деталей, ключ кэша свой на каждый ID
func (v *CampaignsView) Campaign(campaignID int) (*models.Campaign, error) {
	key := campaignsKey.WithParam("id", strconv.Itoa(campaignID))
	return query.Fetch(v.ctx, v.queries, key, func(ctx context.Context) (*models.Campaign, error) {
		return v.api.GetCampaign(ctx, campaignID)
	})
}

// Donate инициирует донат; при успехе список кампаний перечитывается,
// чтобы показать обновлённую сумму сбора
func (v *CampaignsView) Donate(form forms.DonationForm) error {
	if errs := v.forms.Donation(form); errs != nil {
		return errs
	}

	// сбрасываем и список, и страницу деталей этой кампании
	invalidate := []cache.Key{
		campaignsKey,
		campaignsKey.WithParam("id", strconv.Itoa(form.CampaignID)),
	}
	return v.queries.Mutate(v.ctx, invalidate, func(ctx context.Context) error {
		return v.api.InitiateDonation(ctx, api.DonationRequest{
			CampaignID: form.CampaignID,
			Amount:     form.Amount,
			Message:    form.Message,
		})
	})
}

func filterCampaigns(campaigns []models.Campaign, filter CampaignFilter) []models.Campaign {
	search := strings.ToLower(filter.Search)

	filtered := make([]models.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		if search != "" &&
			!strings.Contains(strings.ToLower(campaign.Title), search) &&
			!strings.Contains(strings.ToLower(campaign.Description), search) {
			continue
		}
		if filter.Category != "" && campaign.Category != filter.Category {
			continue
		}
		filtered = append(filtered, campaign)
	}

	return filtered
}

// sortCampaigns сортирует на месте; равные элементы сохраняют исходный порядок
func sortCampaigns(campaigns []models.Campaign, sortBy string) {
	switch sortBy {
	case SortProgress:
		sort.SliceStable(campaigns, func(i, j int) bool {
			return campaigns[i].Progress() > campaigns[j].Progress()
		})
	case SortAmount:
		sort.SliceStable(campaigns, func(i, j int) bool {
			return models.ParseAmount(campaigns[i].CurrentAmount) > models.ParseAmount(campaigns[j].CurrentAmount)
		})
	case SortRecent, "":
		sort.SliceStable(campaigns, func(i, j int) bool {
			return campaigns[i].CreatedAt.After(campaigns[j].CreatedAt)
		})
	}
}
