package repository

import (
	"context"

	"localmarket/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.ProductReview) error
	ListByProductID(ctx context.Context, productID string) ([]*entity.ProductReview, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]*entity.ProductReview, error)
	Exists(ctx context.Context, buyerID, productID string) (bool, error)
}
