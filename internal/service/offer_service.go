package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vedran77/barter/internal/domain"
	"github.com/vedran77/barter/internal/repository"
)

var (
	ErrOfferNotFound     = errors.New("offer not found")
	ErrNotOfferSender    = errors.New("only the sender can create an offer on their behalf")
	ErrNotOfferRecipient = errors.New("only the offer recipient can answer it")
	ErrNotOfferParty     = errors.New("only a party to the offer can change it")
)

type OfferService struct {
	offerRepo repository.OfferRepository
}

func NewOfferService(offerRepo repository.OfferRepository) *OfferService {
	return &OfferService{offerRepo: offerRepo}
}

type CreateOfferInput struct {
	ProductID        uuid.UUID `json:"product_id" validate:"required"`
	FromUserID       uuid.UUID `json:"from_user_id" validate:"required"`
	ToUserID         uuid.UUID `json:"to_user_id" validate:"required"`
	OfferedProductID uuid.UUID `json:"offered_product_id" validate:"required"`
}

type UpdateOfferInput struct {
	ID               uuid.UUID `json:"id" validate:"required"`
	ProductID        uuid.UUID `json:"product_id" validate:"required"`
	FromUserID       uuid.UUID `json:"from_user_id" validate:"required"`
	ToUserID         uuid.UUID `json:"to_user_id" validate:"required"`
	OfferedProductID uuid.UUID `json:"offered_product_id" validate:"required"`
	Status           string    `json:"status" validate:"omitempty,oneof=pending accepted rejected"`
}

func (s *OfferService) Create(ctx context.Context, callerID uuid.UUID, input CreateOfferInput) (*domain.Offer, error) {
	if input.FromUserID != callerID {
		return nil, ErrNotOfferSender
	}

	offer := &domain.Offer{
		ID:               uuid.New(),
		ProductID:        input.ProductID,
		FromUserID:       input.FromUserID,
		ToUserID:         input.ToUserID,
		OfferedProductID: input.OfferedProductID,
		Status:           domain.OfferStatusPending,
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("creating offer: %w", err)
	}
	return offer, nil
}

func (s *OfferService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	return offer, nil
}

func (s *OfferService) Update(ctx context.Context, callerID uuid.UUID, input UpdateOfferInput) (*domain.Offer, error) {
	existing, err := s.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if callerID != existing.FromUserID && callerID != existing.ToUserID {
		return nil, ErrNotOfferParty
	}

	offer := &domain.Offer{
		ID:               input.ID,
		ProductID:        input.ProductID,
		FromUserID:       input.FromUserID,
		ToUserID:         input.ToUserID,
		OfferedProductID: input.OfferedProductID,
		Status:           input.Status,
	}
	if offer.Status == "" {
		offer.Status = domain.OfferStatusPending
	}

	if err := s.offerRepo.Update(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("updating offer: %w", err)
	}
	return offer, nil
}

// Accept sets the offer status to accepted. There is no transition guard:
// accepting an already answered offer just writes the status again.
func (s *OfferService) Accept(ctx context.Context, callerID, id uuid.UUID) (*domain.Offer, error) {
	return s.answer(ctx, callerID, id, domain.OfferStatusAccepted)
}

// Reject sets the offer status to rejected.
func (s *OfferService) Reject(ctx context.Context, callerID, id uuid.UUID) (*domain.Offer, error) {
	return s.answer(ctx, callerID, id, domain.OfferStatusRejected)
}

func (s *OfferService) answer(ctx context.Context, callerID, id uuid.UUID, status string) (*domain.Offer, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if callerID != existing.ToUserID {
		return nil, ErrNotOfferRecipient
	}

	offer, err := s.offerRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("updating offer status: %w", err)
	}
	return offer, nil
}

func (s *OfferService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if callerID != existing.FromUserID && callerID != existing.ToUserID {
		return ErrNotOfferParty
	}

	if err := s.offerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOfferNotFound
		}
		return fmt.Errorf("deleting offer: %w", err)
	}
	return nil
}
