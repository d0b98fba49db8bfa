package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/barter/internal/domain"
	"github.com/vedran77/barter/internal/repository"
)

type fakeUserRepo struct {
	users map[uuid.UUID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range f.users {
		if id != user.ID && existing.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}
	f.users[user.ID] = *user
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]domain.Product{}}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (f *fakeProductRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Product, error) {
	var products []domain.Product
	for _, product := range f.products {
		if product.OwnerID == ownerID {
			products = append(products, product)
		}
	}
	return products, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return repository.ErrNotFound
	}
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

type fakeOfferRepo struct {
	offers map[uuid.UUID]domain.Offer
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: map[uuid.UUID]domain.Offer{}}
}

func (f *fakeOfferRepo) Create(ctx context.Context, offer *domain.Offer) error {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	f.offers[offer.ID] = *offer
	return nil
}

func (f *fakeOfferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	offer, ok := f.offers[id]
	if !ok {
		return nil, nil
	}
	return &offer, nil
}

func (f *fakeOfferRepo) Update(ctx context.Context, offer *domain.Offer) error {
	if _, ok := f.offers[offer.ID]; !ok {
		return repository.ErrNotFound
	}
	f.offers[offer.ID] = *offer
	return nil
}

func (f *fakeOfferRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Offer, error) {
	offer, ok := f.offers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	offer.Status = status
	f.offers[id] = offer
	return &offer, nil
}

func (f *fakeOfferRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.offers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.offers, id)
	return nil
}
