package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type firestoreSellerRepository struct {
	client *firestore.Client
}

func NewFirestoreSellerRepository(client *firestore.Client) repository.SellerRepository {
	return &firestoreSellerRepository{
		client: client,
	}
}

func (r *firestoreSellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	if seller.ID == "" {
		seller.ID = r.client.Collection(sellersCollection).NewDoc().ID
	}

	now := time.Now()
	if seller.CreatedAt.IsZero() {
		seller.CreatedAt = now
	}
	seller.UpdatedAt = now

	_, err := r.client.Collection(sellersCollection).Doc(seller.ID).Set(ctx, seller)
	if err != nil {
		return errors.Internal("Failed to create seller", err)
	}
	return nil
}

func (r *firestoreSellerRepository) GetByID(ctx context.Context, id string) (*entity.Seller, error) {
	doc, err := r.client.Collection(sellersCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Seller", err)
		}
		return nil, errors.Internal("Failed to get seller", err)
	}

	var seller entity.Seller
	if err := doc.DataTo(&seller); err != nil {
		return nil, errors.Internal("Failed to parse seller data", err)
	}
	return &seller, nil
}

func (r *firestoreSellerRepository) GetByUserID(ctx context.Context, userID string) (*entity.Seller, error) {
	iter := r.client.Collection(sellersCollection).Where("userId", "==", userID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Seller", nil)
		}
		return nil, errors.Internal("Failed to query seller", err)
	}

	var seller entity.Seller
	if err := doc.DataTo(&seller); err != nil {
		return nil, errors.Internal("Failed to parse seller data", err)
	}
	return &seller, nil
}

func (r *firestoreSellerRepository) ListAll(ctx context.Context) ([]*entity.Seller, error) {
	return collect[entity.Seller](r.client.Collection(sellersCollection).Documents(ctx), "sellers")
}

func (r *firestoreSellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	seller.UpdatedAt = time.Now()

	_, err := r.client.Collection(sellersCollection).Doc(seller.ID).Set(ctx, seller)
	if err != nil {
		return errors.Internal("Failed to update seller", err)
	}
	return nil
}

func (r *firestoreSellerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(sellersCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete seller", err)
	}
	return nil
}
