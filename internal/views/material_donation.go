package views

import (
	"context"

	"solidaire/internal/api"
	"solidaire/internal/forms"
	"solidaire/internal/models"
)

type MaterialDonationAPI interface {
	CreateMaterialDonation(ctx context.Context, req api.MaterialDonationRequest) (*models.MaterialDonation, error)
}

// MaterialDonationView - форма предложения вещи в дар; после проверки
// заявка уходит админам со статусом pending
type MaterialDonationView struct {
	View
	api   MaterialDonationAPI
	forms *forms.Validator
}

func NewMaterialDonationView(parent context.Context, remote MaterialDonationAPI, validator *forms.Validator) *MaterialDonationView {
	return &MaterialDonationView{
		View:  newView(parent),
		api:   remote,
		forms: validator,
	}
}

func (v *MaterialDonationView) Submit(form forms.MaterialDonationForm) (*models.MaterialDonation, error) {
	if errs := v.forms.MaterialDonation(form); errs != nil {
		return nil, errs
	}

	return v.api.CreateMaterialDonation(v.ctx, api.MaterialDonationRequest{
		DonorName:      form.DonorName,
		DonorContact:   form.DonorContact,
		Title:          form.Title,
		Description:    form.Description,
		Category:       form.Category,
		PickupLocation: form.PickupLocation,
	})
}
