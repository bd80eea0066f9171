package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.ProductReview) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()

	_, err := r.client.Collection(reviewsCollection).Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) ListByProductID(ctx context.Context, productID string) ([]*entity.ProductReview, error) {
	iter := r.client.Collection(reviewsCollection).
		Where("productId", "==", productID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	return collect[entity.ProductReview](iter, "product reviews")
}

func (r *firestoreReviewRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]*entity.ProductReview, error) {
	iter := r.client.Collection(reviewsCollection).
		Where("buyerId", "==", buyerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	return collect[entity.ProductReview](iter, "buyer reviews")
}

func (r *firestoreReviewRepository) Exists(ctx context.Context, buyerID, productID string) (bool, error) {
	docs, err := r.client.Collection(reviewsCollection).
		Where("buyerId", "==", buyerID).
		Where("productId", "==", productID).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return false, errors.Internal("Failed to check existing review", err)
	}

	return len(docs) > 0, nil
}
