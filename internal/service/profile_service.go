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
	ErrUserNotFound    = errors.New("user not found")
	ErrNotProfileOwner = errors.New("only the account owner can change this profile")
)

type ProfileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

type UpdateUserInput struct {
	ID             uuid.UUID `json:"id" validate:"required"`
	Username       string    `json:"username" validate:"required,min=3,max=50"`
	Email          string    `json:"email" validate:"required,email"`
	HashedPassword string    `json:"hashed_password" validate:"required"`
	ProfilePicture *string   `json:"profile_picture"`
	Interests      []string  `json:"interests"`
}

func (s *ProfileService) UpdateInterests(ctx context.Context, callerID, userID uuid.UUID, interests []string) (*domain.User, error) {
	if callerID != userID {
		return nil, ErrNotProfileOwner
	}

	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if interests == nil {
		interests = []string{}
	}
	user.Interests = interests

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating interests: %w", err)
	}
	return user, nil
}

func (s *ProfileService) UpdateProfilePicture(ctx context.Context, callerID, userID uuid.UUID, pictureURL string) (*domain.User, error) {
	if callerID != userID {
		return nil, ErrNotProfileOwner
	}

	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.ProfilePicture = &pictureURL

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating profile picture: %w", err)
	}
	return user, nil
}

// UpdateUser replaces the whole account record. Existence is checked by id,
// the same key every other entity updates by.
func (s *ProfileService) UpdateUser(ctx context.Context, callerID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	if callerID != input.ID {
		return nil, ErrNotProfileOwner
	}

	if _, err := s.fetchUser(ctx, input.ID); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             input.ID,
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: input.HashedPassword,
		ProfilePicture: input.ProfilePicture,
		Interests:      input.Interests,
	}
	if user.Interests == nil {
		user.Interests = []string{}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}

func (s *ProfileService) fetchUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
