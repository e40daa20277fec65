package views

import (
	"context"

	"solidaire/internal/api"
	"solidaire/internal/cache"
	"solidaire/internal/forms"
	"solidaire/internal/models"
	"solidaire/internal/query"
)

var (
	pendingCampaignsKey = cache.NewKey("/api/admin/campaigns/pending")
	pendingDonationsKey = cache.NewKey("/api/admin/material-donations/pending")
	pendingOrdersKey    = cache.NewKey("/api/admin/boutique/orders/pending")
)

type AdminAPI interface {
	PendingCampaigns(ctx context.Context) ([]models.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID int, status string) error
	PendingMaterialDonations(ctx context.Context) ([]models.MaterialDonation, error)
	PublishMaterialDonation(ctx context.Context, donationID int, req api.PublishRequest) error
	UpdateMaterialDonationStatus(ctx context.Context, donationID int, status string) error
	PendingOrders(ctx context.Context) ([]models.BoutiqueOrder, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status string) error
}

// AdminView - панель модерации: кампании, дары и заявки со статусом pending.
// Каждая мутация инвалидирует ровно тот список, который она меняет.
type AdminView struct {
	View
	api     AdminAPI
	queries *query.Client
	forms   *forms.Validator
}

// NewAdminView пускает только администраторов: аноним уходит на /login,
// обычный пользователь - на главную, без ошибки
func NewAdminView(parent context.Context, remote AdminAPI, sess Session, queries *query.Client, validator *forms.Validator) (*AdminView, error) {
	if !sess.IsAuthenticated() {
		return nil, ErrRedirect{Target: "/login"}
	}
	if !sess.IsAdmin() {
		return nil, ErrRedirect{Target: "/"}
	}

	return &AdminView{
		View:    newView(parent),
		api:     remote,
		queries: queries,
		forms:   validator,
	}, nil
}

func (v *AdminView) PendingCampaigns() ([]models.Campaign, error) {
	return query.Fetch(v.ctx, v.queries, pendingCampaignsKey, func(ctx context.Context) ([]models.Campaign, error) {
		return v.api.PendingCampaigns(ctx)
	})
}

func (v *AdminView) ApproveCampaign(campaignID int) error {
	return v.setCampaignStatus(campaignID, models.StatusApproved)
}

func (v *AdminView) RejectCampaign(campaignID int) error {
	return v.setCampaignStatus(campaignID, models.StatusRejected)
}

func (v *AdminView) setCampaignStatus(campaignID int, status string) error {
	return v.queries.Mutate(v.ctx, []cache.Key{pendingCampaignsKey}, func(ctx context.Context) error {
		return v.api.UpdateCampaignStatus(ctx, campaignID, status)
	})
}

func (v *AdminView) PendingDonations() ([]models.MaterialDonation, error) {
	return query.Fetch(v.ctx, v.queries, pendingDonationsKey, func(ctx context.Context) ([]models.MaterialDonation, error) {
		return v.api.PendingMaterialDonations(ctx)
	})
}

// PublishDonation одобряет дар и сразу выставляет его в бутик;
// название, описание и категорию админ может поправить перед публикацией
func (v *AdminView) PublishDonation(donationID int, form forms.PublishItemForm) error {
	if errs := v.forms.PublishItem(form); errs != nil {
		return errs
	}

	return v.queries.Mutate(v.ctx, []cache.Key{pendingDonationsKey}, func(ctx context.Context) error {
		return v.api.PublishMaterialDonation(ctx, donationID, api.PublishRequest{
			Title:       form.Title,
			Description: form.Description,
			Category:    form.Category,
		})
	})
}

func (v *AdminView) RejectDonation(donationID int) error {
	return v.queries.Mutate(v.ctx, []cache.Key{pendingDonationsKey}, func(ctx context.Context) error {
		return v.api.UpdateMaterialDonationStatus(ctx, donationID, models.StatusRejected)
	})
}

func (v *AdminView) PendingOrders() ([]models.BoutiqueOrder, error) {
	return query.Fetch(v.ctx, v.queries, pendingOrdersKey, func(ctx context.Context) ([]models.BoutiqueOrder, error) {
		return v.api.PendingOrders(ctx)
	})
}

func (v *AdminView) ApproveOrder(orderID int) error {
	return v.setOrderStatus(orderID, models.StatusApproved)
}

func (v *AdminView) RejectOrder(orderID int) error {
	return v.setOrderStatus(orderID, models.StatusRejected)
}

func (v *AdminView) setOrderStatus(orderID int, status string) error {
	return v.queries.Mutate(v.ctx, []cache.Key{pendingOrdersKey}, func(ctx context.Context) error {
		return v.api.UpdateOrderStatus(ctx, orderID, status)
	})
}
