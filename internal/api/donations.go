package api

import (
	"context"
)

type DonationRequest struct {
	CampaignID int    `json:"campaignId"`
	Amount     string `json:"amount"`
	Message    string `json:"message,omitempty"`
}

// InitiateDonation начинает денежный донат, подтверждение платежа идёт вне клиента
func (c *Client) InitiateDonation(ctx context.Context, req DonationRequest) error {
	return c.post(ctx, "/api/donations/initiate", req, nil)
}
