package usecase

import (
	"context"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type UpdateProfileInput struct {
	DisplayName string           `json:"display_name" validate:"omitempty,max=100"`
	PhotoURL    string           `json:"photo_url" validate:"omitempty,url"`
	Location    *entity.Location `json:"location"`
}

// EnsureUser returns the stored profile of the session user, creating a buyer
// profile on first sight.
func (uc *UserUseCase) EnsureUser(ctx context.Context, session entity.Session) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errors.CodeNotFound) {
		return nil, err
	}

	user = &entity.User{
		ID:          session.UserID,
		DisplayName: session.DisplayName,
		Email:       session.Email,
		PhotoURL:    session.PhotoURL,
		Role:        entity.RoleBuyer,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Str("user_id", user.ID).Msg("created user profile")
	return user, nil
}

func (uc *UserUseCase) GetMe(ctx context.Context, session entity.Session) (*entity.User, error) {
	return uc.EnsureUser(ctx, session)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, session entity.Session, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.EnsureUser(ctx, session)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.PhotoURL != "" {
		user.PhotoURL = input.PhotoURL
	}
	if input.Location != nil {
		user.Location = input.Location
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
