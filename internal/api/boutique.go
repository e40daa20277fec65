package api

import (
	"context"
	"net/url"
	"strconv"

	"solidaire/internal/models"
)

type ItemsQuery struct {
	Status   string
	Category string
	Limit    int
}

func (c *Client) ListBoutiqueItems(ctx context.Context, q ItemsQuery) ([]models.BoutiqueItem, error) {
	query := url.Values{}
	if q.Status != "" {
		query.Set("status", q.Status)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	var items []models.BoutiqueItem
	if err := c.get(ctx, "/api/boutique/items", query, &items); err != nil {
		return nil, err
	}

	return items, nil
}

type OrderRequest struct {
	ItemID            int    `json:"itemId"`
	MotivationMessage string `json:"motivationMessage,omitempty"`
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*models.BoutiqueOrder, error) {
	var order models.BoutiqueOrder
	if err := c.post(ctx, "/api/boutique/orders", req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}
