package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
)

type firestoreRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreRequestRepository(client *firestore.Client) repository.RequestRepository {
	return &firestoreRequestRepository{
		client: client,
	}
}

func (r *firestoreRequestRepository) Create(ctx context.Context, request *entity.ProductRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	_, err := r.client.Collection(requestsCollection).Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create request", err)
	}

	return nil
}

func (r *firestoreRequestRepository) GetByID(ctx context.Context, id string) (*entity.ProductRequest, error) {
	doc, err := r.client.Collection(requestsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Request", err)
		}
		return nil, errors.Internal("Failed to get request", err)
	}

	var request entity.ProductRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse request data", err)
	}

	return &request, nil
}

func (r *firestoreRequestRepository) ListBySellerID(ctx context.Context, sellerID string, status entity.RequestStatus) ([]*entity.ProductRequest, error) {
	return collect[entity.ProductRequest](r.listQuery("sellerId", sellerID, status).Documents(ctx), "seller requests")
}

func (r *firestoreRequestRepository) ListByBuyerID(ctx context.Context, buyerID string, status entity.RequestStatus) ([]*entity.ProductRequest, error) {
	return collect[entity.ProductRequest](r.listQuery("buyerId", buyerID, status).Documents(ctx), "buyer requests")
}

func (r *firestoreRequestRepository) listQuery(field, value string, status entity.RequestStatus) firestore.Query {
	query := r.client.Collection(requestsCollection).Where(field, "==", value)
	if status != "" {
		query = query.Where("status", "==", status)
	}
	return query.OrderBy("createdAt", firestore.Desc)
}

func (r *firestoreRequestRepository) HasApproved(ctx context.Context, buyerID, productID string) (bool, error) {
	iter := r.client.Collection(requestsCollection).
		Where("buyerId", "==", buyerID).
		Where("productId", "==", productID).
		Where("status", "==", entity.RequestApproved).
		Limit(1).
		Documents(ctx)

	docs, err := iter.GetAll()
	if err != nil {
		return false, errors.Internal("Failed to check approved requests", err)
	}

	return len(docs) > 0, nil
}

// Transition reads the request and its product, applies fn and writes both back
// in a single Firestore transaction. An error from fn aborts without writing.
func (r *firestoreRequestRepository) Transition(ctx context.Context, id string, fn repository.TransitionFunc) (*entity.ProductRequest, error) {
	requestRef := r.client.Collection(requestsCollection).Doc(id)

	var result entity.ProductRequest
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(requestRef)
		if err != nil {
			if IsNotFound(err) {
				return errors.NotFound("Request", err)
			}
			return err
		}

		var request entity.ProductRequest
		if err := doc.DataTo(&request); err != nil {
			return err
		}

		productRef := r.client.Collection(productsCollection).Doc(request.ProductID)
		var product *entity.Product
		productDoc, err := tx.Get(productRef)
		switch {
		case err == nil:
			product = &entity.Product{}
			if err := productDoc.DataTo(product); err != nil {
				return err
			}
		case IsNotFound(err):
			product = nil
		default:
			return err
		}

		if err := fn(&request, product); err != nil {
			return err
		}

		now := time.Now()
		request.UpdatedAt = now
		if err := tx.Set(requestRef, request); err != nil {
			return err
		}

		if product != nil {
			product.UpdatedAt = now
			if err := tx.Set(productRef, product); err != nil {
				return err
			}
		}

		result = request
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to update request status")
	}

	return &result, nil
}

func (r *firestoreRequestRepository) WatchByBuyerID(ctx context.Context, buyerID string, fn func([]*entity.ProductRequest)) error {
	iter := r.client.Collection(requestsCollection).
		Where("buyerId", "==", buyerID).
		Snapshots(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Error().Err(err).Str("buyer_id", buyerID).Msg("request snapshot listener stopped")
			return errors.Internal("Failed to watch requests", err)
		}

		requests, err := collect[entity.ProductRequest](snap.Documents, "watched requests")
		if err != nil {
			return err
		}
		fn(requests)
	}
}
