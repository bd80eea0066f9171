package repository

import (
	"context"

	"localmarket/internal/domain/entity"
)

// TransitionFunc mutates a request and the product it references inside one
// atomic write. product is nil when the product no longer exists.
type TransitionFunc func(request *entity.ProductRequest, product *entity.Product) error

type RequestRepository interface {
	Create(ctx context.Context, request *entity.ProductRequest) error
	GetByID(ctx context.Context, id string) (*entity.ProductRequest, error)
	// ListBySellerID and ListByBuyerID return newest first. An empty status means any.
	ListBySellerID(ctx context.Context, sellerID string, status entity.RequestStatus) ([]*entity.ProductRequest, error)
	ListByBuyerID(ctx context.Context, buyerID string, status entity.RequestStatus) ([]*entity.ProductRequest, error)
	HasApproved(ctx context.Context, buyerID, productID string) (bool, error)
	Transition(ctx context.Context, id string, fn TransitionFunc) (*entity.ProductRequest, error)
	// WatchByBuyerID calls fn with the buyer's full request set on every change until ctx ends.
	WatchByBuyerID(ctx context.Context, buyerID string, fn func([]*entity.ProductRequest)) error
}
