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
	ErrProductNotFound = errors.New("product not found")
	ErrNotProductOwner = errors.New("only the product owner can change it")
)

type ProductService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

type CreateProductInput struct {
	OwnerID     uuid.UUID `json:"owner_id" validate:"required"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	ImageURL    *string   `json:"image_url"`
	Interests   []string  `json:"interests"`
}

type UpdateProductInput struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	OwnerID     uuid.UUID `json:"owner_id" validate:"required"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	ImageURL    *string   `json:"image_url"`
	Interests   []string  `json:"interests"`
}

func (s *ProductService) Create(ctx context.Context, callerID uuid.UUID, input CreateProductInput) (*domain.Product, error) {
	if input.OwnerID != callerID {
		return nil, ErrNotProductOwner
	}

	product := &domain.Product{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Interests:   input.Interests,
	}
	if product.Interests == nil {
		product.Interests = []string{}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Product, error) {
	products, err := s.productRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *ProductService) Update(ctx context.Context, callerID uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	existing, err := s.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != callerID {
		return nil, ErrNotProductOwner
	}

	product := &domain.Product{
		ID:          input.ID,
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Interests:   input.Interests,
	}
	if product.Interests == nil {
		product.Interests = []string{}
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("updating product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != callerID {
		return ErrNotProductOwner
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}
