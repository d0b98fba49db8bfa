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
)

type ProductRepo struct {
	collection *mongo.Collection
}

func NewProductRepo(collection *mongo.Collection) *ProductRepo {
	return &ProductRepo{collection: collection}
}

type productDoc struct {
	ID          primitive.Binary `bson:"id"`
	OwnerID     primitive.Binary `bson:"owner_id"`
	Title       string           `bson:"title"`
	Description string           `bson:"description"`
	ImageURL    *string          `bson:"image_url"`
	Interests   []string         `bson:"interests"`
}

func (r *ProductRepo) Create(ctx context.Context, product *domain.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	_, err := r.collection.InsertOne(ctx, toProductDoc(product))
	return err
}

func (r *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var doc productDoc
	err := r.collection.FindOne(ctx, bson.M{"id": uuidBinary(id)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromProductDoc(&doc)
}

func (r *ProductRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": uuidBinary(ownerID)})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		product, err := fromProductDoc(&doc)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, cursor.Err()
}

func (r *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"id": uuidBinary(product.ID)}, toProductDoc(product))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": uuidBinary(id)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func toProductDoc(product *domain.Product) *productDoc {
	return &productDoc{
		ID:          uuidBinary(product.ID),
		OwnerID:     uuidBinary(product.OwnerID),
		Title:       product.Title,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Interests:   product.Interests,
	}
}

func fromProductDoc(doc *productDoc) (*domain.Product, error) {
	id, err := uuidFromBinary(doc.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := uuidFromBinary(doc.OwnerID)
	if err != nil {
		return nil, err
	}

	return &domain.Product{
		ID:          id,
		OwnerID:     ownerID,
		Title:       doc.Title,
		Description: doc.Description,
		ImageURL:    doc.ImageURL,
		Interests:   doc.Interests,
	}, nil
}
