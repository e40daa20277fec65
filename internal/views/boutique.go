package views

import (
	"context"
	"errors"
	"strings"

	"solidaire/internal/api"
	"solidaire/internal/cache"
	"solidaire/internal/forms"
	"solidaire/internal/models"
	"solidaire/internal/query"
)

var ErrLoginRequired = errors.New("для этого действия нужно войти в аккаунт")

var boutiqueItemsKey = cache.NewKey("/api/boutique/items")

// Категории каталога бутика
var BoutiqueCategories = []string{
	"Électronique",
	"Vêtements",
	"Mobilier",
	"Éducation",
	"Jouets",
}

type BoutiqueAPI interface {
	ListBoutiqueItems(ctx context.Context, q api.ItemsQuery) ([]models.BoutiqueItem, error)
	CreateOrder(ctx context.Context, req api.OrderRequest) (*models.BoutiqueOrder, error)
}

// BoutiqueView - витрина подаренных вещей; запрашивать вещь могут только
// вошедшие пользователи
type BoutiqueView struct {
	View
	api     BoutiqueAPI
	session Session
	queries *query.Client
	forms   *forms.Validator
}

func NewBoutiqueView(parent context.Context, remote BoutiqueAPI, sess Session, queries *query.Client, validator *forms.Validator) *BoutiqueView {
	return &BoutiqueView{
		View:    newView(parent),
		api:     remote,
		session: sess,
		queries: queries,
		forms:   validator,
	}
}

type BoutiqueFilter struct {
	Search   string
	Category string
}

// Items запрашивает доступные товары; категория входит в ключ кэша,
// поиск выполняется поверх загруженного списка
func (v *BoutiqueView) Items(filter BoutiqueFilter) ([]models.BoutiqueItem, error) {
	key := boutiqueItemsKey.WithParam("status", models.StatusAvailable)
	if filter.Category != "" {
		key = key.WithParam("category", filter.Category)
	}

	items, err := query.Fetch(v.ctx, v.queries, key, func(ctx context.Context) ([]models.BoutiqueItem, error) {
		return v.api.ListBoutiqueItems(ctx, api.ItemsQuery{
			Status:   models.StatusAvailable,
			Category: filter.Category,
		})
	})
	if err != nil {
		return nil, err
	}

	if filter.Search == "" {
		return items, nil
	}

	search := strings.ToLower(filter.Search)
	filtered := make([]models.BoutiqueItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), search) ||
			strings.Contains(strings.ToLower(item.Description), search) {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

// RequestItem отправляет заявку на товар админам на рассмотрение
func (v *BoutiqueView) RequestItem(form forms.OrderRequestForm) (*models.BoutiqueOrder, error) {
	if !v.session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}

	if errs := v.forms.OrderRequest(form); errs != nil {
		return nil, errs
	}

	var order *models.BoutiqueOrder
	err := v.queries.Mutate(v.ctx, nil, func(ctx context.Context) error {
		created, err := v.api.CreateOrder(ctx, api.OrderRequest{
			ItemID:            form.ItemID,
			MotivationMessage: strings.TrimSpace(form.MotivationMessage),
		})
		if err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
