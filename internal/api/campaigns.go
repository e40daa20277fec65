package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"solidaire/internal/models"
)

func (c *Client) ListCampaigns(ctx context.Context, limit int) ([]models.Campaign, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{}
		query.Set("limit", strconv.Itoa(limit))
	}

	var campaigns []models.Campaign
	if err := c.get(ctx, "/api/campaigns", query, &campaigns); err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (c *Client) GetCampaign(ctx context.Context, campaignID int) (*models.Campaign, error) {
	var campaign models.Campaign
	path := fmt.Sprintf("/api/campaigns/%d", campaignID)
	if err := c.get(ctx, path, nil, &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}
