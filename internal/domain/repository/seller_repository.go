package repository

import (
	"context"

	"localmarket/internal/domain/entity"
)

type SellerRepository interface {
	Create(ctx context.Context, seller *entity.Seller) error
	GetByID(ctx context.Context, id string) (*entity.Seller, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Seller, error)
	// ListAll returns every seller; nearby search filters them in memory.
	ListAll(ctx context.Context) ([]*entity.Seller, error)
	Update(ctx context.Context, seller *entity.Seller) error
	Delete(ctx context.Context, id string) error
}
