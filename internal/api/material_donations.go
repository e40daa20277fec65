package api

import (
	"context"

	"solidaire/internal/models"
)

type MaterialDonationRequest struct {
	DonorName      string `json:"donorName"`
	DonorContact   string `json:"donorContact"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	PickupLocation string `json:"pickupLocation"`
}

func (c *Client) CreateMaterialDonation(ctx context.Context, req MaterialDonationRequest) (*models.MaterialDonation, error) {
	var donation models.MaterialDonation
	if err := c.post(ctx, "/api/material-donations", req, &donation); err != nil {
		return nil, err
	}

	return &donation, nil
}
