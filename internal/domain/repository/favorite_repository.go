package repository

import (
	"context"

	"localmarket/internal/domain/entity"
)

type FavoriteRepository interface {
	Exists(ctx context.Context, buyerID, productID string) (bool, error)
	Add(ctx context.Context, favorite *entity.Favorite) error
	Remove(ctx context.Context, buyerID, productID string) error
	CountByProductID(ctx context.Context, productID string) (int, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]*entity.Favorite, error)
}
