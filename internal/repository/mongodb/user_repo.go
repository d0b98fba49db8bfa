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

type UserRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(collection *mongo.Collection) *UserRepo {
	return &UserRepo{collection: collection}
}

// userDoc is the stored shape of a user. The id travels as binary; the email
// stays plain text so the unique index and lookups match on it directly.
type userDoc struct {
	ID             primitive.Binary `bson:"id"`
	Username       string           `bson:"username"`
	Email          string           `bson:"email"`
	HashedPassword string           `bson:"hashed_password"`
	ProfilePicture *string          `bson:"profile_picture"`
	Interests      []string         `bson:"interests"`
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	_, err := r.collection.InsertOne(ctx, toUserDoc(user))
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicateKey
	}
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findUser(ctx, bson.M{"id": uuidBinary(id)})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, bson.M{"email": email})
}

func (r *UserRepo) Update(ctx context.Context, user *domain.User) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"id": uuidBinary(user.ID)}, toUserDoc(user))
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicateKey
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepo) findUser(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromUserDoc(&doc)
}

func toUserDoc(user *domain.User) *userDoc {
	return &userDoc{
		ID:             uuidBinary(user.ID),
		Username:       user.Username,
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
		ProfilePicture: user.ProfilePicture,
		Interests:      user.Interests,
	}
}

func fromUserDoc(doc *userDoc) (*domain.User, error) {
	id, err := uuidFromBinary(doc.ID)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:             id,
		Username:       doc.Username,
		Email:          doc.Email,
		HashedPassword: doc.HashedPassword,
		ProfilePicture: doc.ProfilePicture,
		Interests:      doc.Interests,
	}, nil
}
