package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/barter/internal/domain"
)

var (
	// ErrNotFound is returned by Update, Delete and UpdateStatus when no
	// document matches the given id. Lookups signal absence with (nil, nil)
	// instead.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateKey is returned by Create when a unique index rejects the
	// insert.
	ErrDuplicateKey = errors.New("duplicate key")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
	Update(ctx context.Context, offer *domain.Offer) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Offer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
