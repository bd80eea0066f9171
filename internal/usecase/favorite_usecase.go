package usecase

import (
	"context"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	productRepo repository.ProductRepository,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

// Toggle adds the product to the buyer's favorites, or removes it when already
// there. It returns whether the product is a favorite afterwards.
func (uc *FavoriteUseCase) Toggle(ctx context.Context, buyerID, productID string) (bool, error) {
	exists, err := uc.favoriteRepo.Exists(ctx, buyerID, productID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := uc.favoriteRepo.Remove(ctx, buyerID, productID); err != nil {
			return true, err
		}
		return false, nil
	}

	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return false, err
	}

	err = uc.favoriteRepo.Add(ctx, &entity.Favorite{
		BuyerID:   buyerID,
		ProductID: productID,
	})
	if err != nil {
		return false, err
	}

	logger.Debug().Str("buyer_id", buyerID).Str("product_id", productID).Msg("favorite added")
	return true, nil
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, buyerID, productID string) (bool, error) {
	return uc.favoriteRepo.Exists(ctx, buyerID, productID)
}

func (uc *FavoriteUseCase) Count(ctx context.Context, productID string) (int, error) {
	return uc.favoriteRepo.CountByProductID(ctx, productID)
}

// ListByBuyer returns the ids of the buyer's favorite products.
func (uc *FavoriteUseCase) ListByBuyer(ctx context.Context, buyerID string) ([]string, error) {
	favorites, err := uc.favoriteRepo.ListByBuyerID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ProductID)
	}
	return ids, nil
}
