package views

import (
	"context"
	"strconv"

	"solidaire/internal/api"
	"solidaire/internal/forms"
	"solidaire/internal/models"
	"solidaire/internal/query"
)

type HomeAPI interface {
	ListCampaigns(ctx context.Context, limit int) ([]models.Campaign, error)
	ListBoutiqueItems(ctx context.Context, q api.ItemsQuery) ([]models.BoutiqueItem, error)
	InitiateDonation(ctx context.Context, req api.DonationRequest) error
}

// HomeView - главная страница: избранные кампании и товары бутика
type HomeView struct {
	View
	api     HomeAPI
	queries *query.Client
	forms   *forms.Validator
	limit   int
}

func NewHomeView(parent context.Context, remote HomeAPI, queries *query.Client, validator *forms.Validator, limit int) *HomeView {
	return &HomeView{
		View:    newView(parent),
		api:     remote,
		queries: queries,
		forms:   validator,
		limit:   limit,
	}
}

func (v *HomeView) FeaturedCampaigns() ([]models.Campaign, error) {
	key := campaignsKey.WithParam("limit", strconv.Itoa(v.limit))
	return query.Fetch(v.ctx, v.queries, key, func(ctx context.Context) ([]models.Campaign, error) {
		return v.api.ListCampaigns(ctx, v.limit)
	})
}

func (v *HomeView) FeaturedItems() ([]models.BoutiqueItem, error) {
	key := boutiqueItemsKey.WithParam("limit", strconv.Itoa(v.limit))
	return query.Fetch(v.ctx, v.queries, key, func(ctx context.Context) ([]models.BoutiqueItem, error) {
		return v.api.ListBoutiqueItems(ctx, api.ItemsQuery{Limit: v.limit})
	})
}

func (v *HomeView) Donate(form forms.DonationForm) error {
	if errs := v.forms.Donation(form); errs != nil {
		return errs
	}

	return v.queries.Mutate(v.ctx, nil, func(ctx context.Context) error {
		return v.api.InitiateDonation(ctx, api.DonationRequest{
			CampaignID: form.CampaignID,
			Amount:     form.Amount,
			Message:    form.Message,
		})
	})
}
