package domain

import (
	"github.com/google/uuid"
)

const (
	OfferStatusPending  = "pending"
	OfferStatusAccepted = "accepted"
	OfferStatusRejected = "rejected"
)

type Offer struct {
	ID               uuid.UUID `json:"id"`
	ProductID        uuid.UUID `json:"product_id"`
	FromUserID       uuid.UUID `json:"from_user_id"`
	ToUserID         uuid.UUID `json:"to_user_id"`
	OfferedProductID uuid.UUID `json:"offered_product_id"`
	Status           string    `json:"status"`
}
