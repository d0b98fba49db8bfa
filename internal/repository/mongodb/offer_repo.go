package mongodb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/barter/internal/domain"
	"github.com/vedran77/barter/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OfferRepo struct {
	collection *mongo.Collection
}

func NewOfferRepo(collection *mongo.Collection) *OfferRepo {
	return &OfferRepo{collection: collection}
}

type offerDoc struct {
	ID               primitive.Binary `bson:"id"`
	ProductID        primitive.Binary `bson:"product_id"`
	FromUserID       primitive.Binary `bson:"from_user_id"`
	ToUserID         primitive.Binary `bson:"to_user_id"`
	OfferedProductID primitive.Binary `bson:"offered_product_id"`
	Status           string           `bson:"status"`
}

func (r *OfferRepo) Create(ctx context.Context, offer *domain.Offer) error {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}

	_, err := r.collection.InsertOne(ctx, toOfferDoc(offer))
	return err
}

func (r *OfferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	var doc offerDoc
	err := r.collection.FindOne(ctx, bson.M{"id": uuidBinary(id)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromOfferDoc(&doc)
}

func (r *OfferRepo) Update(ctx context.Context, offer *domain.Offer) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"id": uuidBinary(offer.ID)}, toOfferDoc(offer))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdateStatus writes the status field in place and returns the document as it
// stands after the write. Writing a status the offer already has is a no-op
// that still succeeds.
func (r *OfferRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Offer, error) {
	var doc offerDoc
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"id": uuidBinary(id)},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromOfferDoc(&doc)
}

func (r *OfferRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": uuidBinary(id)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func toOfferDoc(offer *domain.Offer) *offerDoc {
	return &offerDoc{
		ID:               uuidBinary(offer.ID),
		ProductID:        uuidBinary(offer.ProductID),
		FromUserID:       uuidBinary(offer.FromUserID),
		ToUserID:         uuidBinary(offer.ToUserID),
		OfferedProductID: uuidBinary(offer.OfferedProductID),
		Status:           offer.Status,
	}
}

func fromOfferDoc(doc *offerDoc) (*domain.Offer, error) {
	offer := &domain.Offer{Status: doc.Status}

	for _, f := range []struct {
		src primitive.Binary
		dst *uuid.UUID
	}{
		{doc.ID, &offer.ID},
		{doc.ProductID, &offer.ProductID},
		{doc.FromUserID, &offer.FromUserID},
		{doc.ToUserID, &offer.ToUserID},
		{doc.OfferedProductID, &offer.OfferedProductID},
	} {
		id, err := uuidFromBinary(f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = id
	}

	return offer, nil
}
