package usecase

import (
	"context"
	"sort"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/internal/domain/service"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
)

const DefaultNearbyLimit = 50

type SellerUseCase struct {
	sellerRepo  repository.SellerRepository
	userRepo    repository.UserRepository
	nearbyLimit int
}

func NewSellerUseCase(
	sellerRepo repository.SellerRepository,
	userRepo repository.UserRepository,
	nearbyLimit int,
) *SellerUseCase {
	if nearbyLimit <= 0 {
		nearbyLimit = DefaultNearbyLimit
	}
	return &SellerUseCase{
		sellerRepo:  sellerRepo,
		userRepo:    userRepo,
		nearbyLimit: nearbyLimit,
	}
}

type SellerInput struct {
	BusinessName string          `json:"business_name" validate:"required,max=120"`
	Description  string          `json:"description" validate:"max=2000"`
	Phone        string          `json:"phone" validate:"max=32"`
	Location     entity.Location `json:"location"`
	Categories   []string        `json:"categories"`
}

func (uc *SellerUseCase) CreateSeller(ctx context.Context, session entity.Session, input SellerInput) (*entity.Seller, error) {
	existing, err := uc.sellerRepo.GetByUserID(ctx, session.UserID)
	if err == nil && existing != nil {
		return nil, errors.Conflict("User already has a seller profile")
	}
	if err != nil && !errors.Is(err, errors.CodeNotFound) {
		return nil, err
	}

	seller := &entity.Seller{
		UserID:       session.UserID,
		BusinessName: input.BusinessName,
		Description:  input.Description,
		Phone:        input.Phone,
		Location:     input.Location,
		Geohash:      service.Geohash(input.Location.Latitude, input.Location.Longitude),
		Categories:   input.Categories,
	}
	if err := uc.sellerRepo.Create(ctx, seller); err != nil {
		return nil, err
	}

	uc.promoteToSeller(ctx, session.UserID)

	return seller, nil
}

func (uc *SellerUseCase) promoteToSeller(ctx context.Context, userID string) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn().Err(err).Str("user_id", userID).Msg("seller created without user profile")
		return
	}
	if user.Role != entity.RoleBuyer {
		return
	}

	user.Role = entity.RoleSeller
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn().Err(err).Str("user_id", userID).Msg("failed to promote user to seller")
	}
}

func (uc *SellerUseCase) GetSeller(ctx context.Context, id string) (*entity.Seller, error) {
	return uc.sellerRepo.GetByID(ctx, id)
}

func (uc *SellerUseCase) GetSellerByUserID(ctx context.Context, userID string) (*entity.Seller, error) {
	return uc.sellerRepo.GetByUserID(ctx, userID)
}

func (uc *SellerUseCase) UpdateSeller(ctx context.Context, session entity.Session, id string, input SellerInput) (*entity.Seller, error) {
	seller, err := uc.ownedSeller(ctx, session, id)
	if err != nil {
		return nil, err
	}

	seller.BusinessName = input.BusinessName
	seller.Description = input.Description
	seller.Phone = input.Phone
	seller.Location = input.Location
	seller.Geohash = service.Geohash(input.Location.Latitude, input.Location.Longitude)
	seller.Categories = input.Categories

	if err := uc.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	return seller, nil
}

func (uc *SellerUseCase) DeleteSeller(ctx context.Context, session entity.Session, id string) error {
	if _, err := uc.ownedSeller(ctx, session, id); err != nil {
		return err
	}
	return uc.sellerRepo.Delete(ctx, id)
}

func (uc *SellerUseCase) ownedSeller(ctx context.Context, session entity.Session, id string) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller.UserID != session.UserID {
		return nil, errors.Forbidden("You don't own this seller profile", nil)
	}
	return seller, nil
}

// Nearby scans every seller, keeps those within radiusMiles of origin and returns
// them closest first. Sellers at equal distance keep their store order.
func (uc *SellerUseCase) Nearby(ctx context.Context, origin entity.Location, radiusMiles float64, limit int) ([]entity.SellerWithDistance, error) {
	if limit <= 0 {
		limit = uc.nearbyLimit
	}

	sellers, err := uc.sellerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	nearby := make([]entity.SellerWithDistance, 0)
	for _, seller := range sellers {
		d := service.DistanceMiles(origin.Latitude, origin.Longitude, seller.Location.Latitude, seller.Location.Longitude)
		if d <= radiusMiles {
			nearby = append(nearby, entity.SellerWithDistance{Seller: seller, Distance: d})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}
