package repository

import (
	"context"

	"localmarket/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error
	Delete(ctx context.Context, id string) error
}
