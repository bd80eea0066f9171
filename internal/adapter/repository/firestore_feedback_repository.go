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

type firestoreFeedbackRepository struct {
	client *firestore.Client
}

func NewFirestoreFeedbackRepository(client *firestore.Client) repository.FeedbackRepository {
	return &firestoreFeedbackRepository{
		client: client,
	}
}

// Bugs and suggestions live in separate collections.
func (r *firestoreFeedbackRepository) collection(kind entity.FeedbackKind) *firestore.CollectionRef {
	if kind == entity.FeedbackSuggestion {
		return r.client.Collection(suggestionsCollection)
	}
	return r.client.Collection(bugsCollection)
}

func (r *firestoreFeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}

	now := time.Now()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now

	_, err := r.collection(feedback.Kind).Doc(feedback.ID).Set(ctx, feedback)
	if err != nil {
		return errors.Internal("Failed to create feedback", err)
	}
	return nil
}

func (r *firestoreFeedbackRepository) GetByID(ctx context.Context, kind entity.FeedbackKind, id string) (*entity.Feedback, error) {
	doc, err := r.collection(kind).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Feedback", err)
		}
		return nil, errors.Internal("Failed to get feedback", err)
	}

	var feedback entity.Feedback
	if err := doc.DataTo(&feedback); err != nil {
		return nil, errors.Internal("Failed to parse feedback data", err)
	}
	return &feedback, nil
}

func (r *firestoreFeedbackRepository) List(ctx context.Context, kind entity.FeedbackKind, status entity.FeedbackStatus, limit, offset int) ([]*entity.Feedback, int64, error) {
	query := r.collection(kind).OrderBy("createdAt", firestore.Desc)
	if status != "" {
		query = query.Where("status", "==", status)
	}

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count feedback", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	items, err := collect[entity.Feedback](query.Documents(ctx), "feedback")
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *firestoreFeedbackRepository) UpdateStatus(ctx context.Context, kind entity.FeedbackKind, id string, status entity.FeedbackStatus) error {
	_, err := r.collection(kind).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Feedback", err)
		}
		return errors.Internal("Failed to update feedback status", err)
	}
	return nil
}
