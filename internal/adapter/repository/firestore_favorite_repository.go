package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

// Favorites are keyed by entity.FavoriteID so a buyer/product pair maps to
// exactly one document.
type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{
		client: client,
	}
}

func (r *firestoreFavoriteRepository) Exists(ctx context.Context, buyerID, productID string) (bool, error) {
	_, err := r.client.Collection(favoritesCollection).Doc(entity.FavoriteID(buyerID, productID)).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorite", err)
	}
	return true, nil
}

func (r *firestoreFavoriteRepository) Add(ctx context.Context, favorite *entity.Favorite) error {
	favorite.ID = entity.FavoriteID(favorite.BuyerID, favorite.ProductID)
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(favoritesCollection).Doc(favorite.ID).Set(ctx, favorite)
	if err != nil {
		return errors.Internal("Failed to add favorite", err)
	}
	return nil
}

func (r *firestoreFavoriteRepository) Remove(ctx context.Context, buyerID, productID string) error {
	_, err := r.client.Collection(favoritesCollection).Doc(entity.FavoriteID(buyerID, productID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}
	return nil
}

func (r *firestoreFavoriteRepository) CountByProductID(ctx context.Context, productID string) (int, error) {
	docs, err := r.client.Collection(favoritesCollection).Where("productId", "==", productID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count favorites", err)
	}
	return len(docs), nil
}

func (r *firestoreFavoriteRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]*entity.Favorite, error) {
	iter := r.client.Collection(favoritesCollection).
		Where("buyerId", "==", buyerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	return collect[entity.Favorite](iter, "favorites")
}
