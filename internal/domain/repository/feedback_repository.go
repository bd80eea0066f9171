package repository

import (
	"context"

	"localmarket/internal/domain/entity"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	GetByID(ctx context.Context, kind entity.FeedbackKind, id string) (*entity.Feedback, error)
	List(ctx context.Context, kind entity.FeedbackKind, status entity.FeedbackStatus, limit, offset int) ([]*entity.Feedback, int64, error)
	UpdateStatus(ctx context.Context, kind entity.FeedbackKind, id string, status entity.FeedbackStatus) error
}
