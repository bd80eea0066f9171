package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"localmarket/pkg/errors"
)

const (
	usersCollection       = "users"
	sellersCollection     = "sellers"
	productsCollection    = "products"
	requestsCollection    = "requests"
	reviewsCollection     = "reviews"
	favoritesCollection   = "favorites"
	bugsCollection        = "bugs"
	suggestionsCollection = "suggestions"
)

func IsNotFound(err error) bool {
	return err != nil && status.Code(err) == codes.NotFound
}

// collect drains iter into a slice of T, closing it when done.
func collect[T any](iter *firestore.DocumentIterator, resource string) ([]*T, error) {
	defer iter.Stop()

	items := make([]*T, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate "+resource, err)
		}

		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse "+resource+" data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

// Ping reads at most one user document to prove Firestore is reachable.
func Ping(ctx context.Context, client *firestore.Client) error {
	_, err := client.Collection(usersCollection).Limit(1).Documents(ctx).GetAll()
	return err
}
