package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection(productsCollection).NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

// ListAll fetches the whole collection. Firestore has no substring search, so
// catalog filtering happens in memory on top of this.
func (r *firestoreProductRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection(productsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	return collect[entity.Product](iter, "products")
}

func (r *firestoreProductRepository) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	iter := r.client.Collection(productsCollection).
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	return collect[entity.Product](iter, "seller products")
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	_, err := r.client.Collection(productsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "rating", Value: rating},
		{Path: "reviewCount", Value: reviewCount},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product rating", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(productsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}
