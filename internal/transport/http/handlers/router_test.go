package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/barter/internal/domain"
	"github.com/vedran77/barter/internal/repository"
	"github.com/vedran77/barter/internal/service"
)

const testSecret = "test-secret"

// In-memory repositories backing the full router under test.

type fakeUserRepo struct {
	users map[uuid.UUID]domain.User
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
	f.users[user.ID] = *user
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]domain.Product
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

type testEnv struct {
	router   http.Handler
	users    *fakeUserRepo
	products *fakeProductRepo
	offers   *fakeOfferRepo
}

func newTestEnv() *testEnv {
	users := &fakeUserRepo{users: map[uuid.UUID]domain.User{}}
	products := &fakeProductRepo{products: map[uuid.UUID]domain.Product{}}
	offers := &fakeOfferRepo{offers: map[uuid.UUID]domain.Offer{}}

	router := Router(
		NewAuthHandler(service.NewAuthService(users, testSecret)),
		NewProfileHandler(service.NewProfileService(users)),
		NewProductHandler(service.NewProductService(products)),
		NewOfferHandler(service.NewOfferService(offers)),
		testSecret,
	)

	return &testEnv{router: router, users: users, products: products, offers: offers}
}

func authToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path string, body any, userID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set("Authorization", "Bearer "+authToken(t, *userID))
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestWelcomeRoute(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]string](t, rec)
	require.Equal(t, "Welcome to the Barter App!", body["message"])
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	env := newTestEnv()

	payload := map[string]any{
		"username":        "alice",
		"email":           "alice@example.com",
		"hashed_password": "hash",
	}

	rec := env.do(t, http.MethodPost, "/auth/register", payload, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	user := decodeBody[domain.User](t, rec)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.Equal(t, "alice", user.Username)
	require.NotNil(t, user.Interests)

	rec = env.do(t, http.MethodPost, "/auth/register", payload, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/auth/register", map[string]any{
		"username": "al", "email": "not-an-email", "hashed_password": "",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/products/", map[string]any{}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/offers/"+uuid.NewString(), nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProductLifecycle(t *testing.T) {
	env := newTestEnv()
	owner := uuid.New()

	rec := env.do(t, http.MethodPost, "/products/", map[string]any{
		"owner_id":    owner,
		"title":       "Cast iron skillet",
		"description": "Well seasoned",
	}, &owner)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.Product](t, rec)

	rec = env.do(t, http.MethodGet, "/products/"+created.ID.String(), nil, &owner)
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeBody[domain.Product](t, rec)
	require.Equal(t, created, fetched)

	rec = env.do(t, http.MethodDelete, "/products/"+created.ID.String(), nil, &owner)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	require.Equal(t, "Product deleted successfully", body["message"])

	rec = env.do(t, http.MethodGet, "/products/"+created.ID.String(), nil, &owner)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProductByNonOwner(t *testing.T) {
	env := newTestEnv()
	owner := uuid.New()
	stranger := uuid.New()

	rec := env.do(t, http.MethodPost, "/products/", map[string]any{
		"owner_id": owner, "title": "Skillet", "description": "Well seasoned",
	}, &owner)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.Product](t, rec)

	rec = env.do(t, http.MethodDelete, "/products/"+created.ID.String(), nil, &stranger)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

// The owner-list route turns an empty result into 404 rather than an empty
// list.
func TestListByOwnerEmptyIs404(t *testing.T) {
	env := newTestEnv()
	caller := uuid.New()

	rec := env.do(t, http.MethodGet, "/products/owner/"+uuid.NewString(), nil, &caller)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListByOwner(t *testing.T) {
	env := newTestEnv()
	owner := uuid.New()

	for _, title := range []string{"Skillet", "Kettle"} {
		rec := env.do(t, http.MethodPost, "/products/", map[string]any{
			"owner_id": owner, "title": title, "description": "d",
		}, &owner)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/products/owner/"+owner.String(), nil, &owner)
	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeBody[[]domain.Product](t, rec)
	require.Len(t, products, 2)
}

func TestOfferAcceptFlow(t *testing.T) {
	env := newTestEnv()
	from, to := uuid.New(), uuid.New()

	rec := env.do(t, http.MethodPost, "/offers/", map[string]any{
		"product_id":         uuid.New(),
		"from_user_id":       from,
		"to_user_id":         to,
		"offered_product_id": uuid.New(),
	}, &from)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.Offer](t, rec)
	require.Equal(t, domain.OfferStatusPending, created.Status)

	// Sender cannot answer their own offer.
	rec = env.do(t, http.MethodPatch, fmt.Sprintf("/offers/%s/accept", created.ID), nil, &from)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPatch, fmt.Sprintf("/offers/%s/accept", created.ID), nil, &to)
	require.Equal(t, http.StatusOK, rec.Code)
	accepted := decodeBody[domain.Offer](t, rec)
	require.Equal(t, domain.OfferStatusAccepted, accepted.Status)

	rec = env.do(t, http.MethodPatch, fmt.Sprintf("/offers/%s/accept", created.ID), nil, &to)
	require.Equal(t, http.StatusOK, rec.Code)
	again := decodeBody[domain.Offer](t, rec)
	require.Equal(t, domain.OfferStatusAccepted, again.Status)
}

func TestOfferNotFound(t *testing.T) {
	env := newTestEnv()
	caller := uuid.New()

	rec := env.do(t, http.MethodGet, "/offers/"+uuid.NewString(), nil, &caller)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPatch, fmt.Sprintf("/offers/%s/reject", uuid.New()), nil, &caller)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOfferDeleteMessage(t *testing.T) {
	env := newTestEnv()
	from, to := uuid.New(), uuid.New()

	rec := env.do(t, http.MethodPost, "/offers/", map[string]any{
		"product_id":         uuid.New(),
		"from_user_id":       from,
		"to_user_id":         to,
		"offered_product_id": uuid.New(),
	}, &from)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.Offer](t, rec)

	rec = env.do(t, http.MethodDelete, "/offers/"+created.ID.String(), nil, &from)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	require.Equal(t, "Offer deleted successfully", body["message"])
}

func TestProfileUpdateInterests(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/auth/register", map[string]any{
		"username": "alice", "email": "alice@example.com", "hashed_password": "hash",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	user := decodeBody[domain.User](t, rec)

	rec = env.do(t, http.MethodPut, "/profile/update_interests/"+user.ID.String(), map[string]any{
		"interests": []string{"vinyl", "books"},
	}, &user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[domain.User](t, rec)
	require.Equal(t, []string{"vinyl", "books"}, updated.Interests)

	// Someone else's profile is off limits.
	stranger := uuid.New()
	rec = env.do(t, http.MethodPut, "/profile/update_interests/"+user.ID.String(), map[string]any{
		"interests": []string{"x"},
	}, &stranger)
	require.Equal(t, http.StatusForbidden, rec.Code)

	missing := uuid.New()
	rec = env.do(t, http.MethodPut, "/profile/update_interests/"+missing.String(), map[string]any{
		"interests": []string{"x"},
	}, &missing)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileUpdateUser(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/auth/register", map[string]any{
		"username": "alice", "email": "alice@example.com", "hashed_password": "hash",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	user := decodeBody[domain.User](t, rec)

	rec = env.do(t, http.MethodPut, "/profile/update_user", map[string]any{
		"id":              user.ID,
		"username":        "alice2",
		"email":           "alice2@example.com",
		"hashed_password": "hash",
	}, &user.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[domain.User](t, rec)
	require.Equal(t, "alice2", updated.Username)
	require.Equal(t, "alice2@example.com", updated.Email)
}
