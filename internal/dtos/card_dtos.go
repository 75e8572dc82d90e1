package dtos

import "github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"

type AddCardRequest struct {
	CardNo     string `json:"card_no" validate:"required,min=1,max=50"`
	NameOnCard string `json:"name_on_card" validate:"required,min=1,max=100"`

	BillingLine1 string  `json:"billing_line_1" validate:"required,min=1,max=255"`
	BillingCity  string  `json:"billing_city" validate:"required,min=1,max=100"`
	BillingState string  `json:"billing_state" validate:"required,min=1,max=50"`
	BillingZip   *string `json:"billing_zip,omitempty" validate:"omitempty,max=20"`
}

type AddCardResponse struct {
	CardID int64 `json:"card_id"`
}

type CardListResponse struct {
	Cards []*models.CardListing `json:"cards"`
}

type DeleteCardResponse struct {
	Message string `json:"message"`
}
