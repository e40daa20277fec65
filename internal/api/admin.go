package api

import (
	"context"
	"fmt"

	"solidaire/internal/models"
)

// Админские эндпоинты, сервер сам проверяет роль по токену

func (c *Client) PendingCampaigns(ctx context.Context) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := c.get(ctx, "/api/admin/campaigns/pending", nil, &campaigns); err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (c *Client) UpdateCampaignStatus(ctx context.Context, campaignID int, status string) error {
	path := fmt.Sprintf("/api/admin/campaigns/%d/status", campaignID)
	return c.put(ctx, path, map[string]string{"status": status}, nil)
}

func (c *Client) PendingMaterialDonations(ctx context.Context) ([]models.MaterialDonation, error) {
	var donations []models.MaterialDonation
	if err := c.get(ctx, "/api/admin/material-donations/pending", nil, &donations); err != nil {
		return nil, err
	}

	return donations, nil
}

type PublishRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// PublishMaterialDonation превращает одобренный дар в товар бутика
func (c *Client) PublishMaterialDonation(ctx context.Context, donationID int, req PublishRequest) error {
	path := fmt.Sprintf("/api/admin/material-donations/%d/publish", donationID)
	return c.post(ctx, path, req, nil)
}

func (c *Client) UpdateMaterialDonationStatus(ctx context.Context, donationID int, status string) error {
	path := fmt.Sprintf("/api/admin/material-donations/%d/status", donationID)
	return c.put(ctx, path, map[string]string{"status": status}, nil)
}

func (c *Client) PendingOrders(ctx context.Context) ([]models.BoutiqueOrder, error) {
	var orders []models.BoutiqueOrder
	if err := c.get(ctx, "/api/admin/boutique/orders/pending", nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status string) error {
	path := fmt.Sprintf("/api/admin/boutique/orders/%d/status", orderID)
	return c.put(ctx, path, map[string]string{"status": status}, nil)
}
