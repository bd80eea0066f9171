package usecase

import (
	"context"
	"fmt"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type FeedbackUseCase struct {
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackUseCase(feedbackRepo repository.FeedbackRepository) *FeedbackUseCase {
	return &FeedbackUseCase{
		feedbackRepo: feedbackRepo,
	}
}

type SubmitFeedbackInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
}

func (uc *FeedbackUseCase) Submit(ctx context.Context, session entity.Session, kind entity.FeedbackKind, input SubmitFeedbackInput) (*entity.Feedback, error) {
	if !kind.Valid() {
		return nil, errors.Validation(fmt.Sprintf("unknown feedback kind %q", kind))
	}

	feedback := &entity.Feedback{
		Kind:        kind,
		UserID:      session.UserID,
		UserEmail:   session.Email,
		Title:       input.Title,
		Description: input.Description,
		Status:      entity.FeedbackOpen,
	}
	if err := uc.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (uc *FeedbackUseCase) List(ctx context.Context, kind entity.FeedbackKind, status entity.FeedbackStatus, page, pageSize int) ([]*entity.Feedback, int64, error) {
	if !kind.Valid() {
		return nil, 0, errors.Validation(fmt.Sprintf("unknown feedback kind %q", kind))
	}
	if status != "" && !status.Valid() {
		return nil, 0, errors.Validation(fmt.Sprintf("unknown feedback status %q", status))
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	return uc.feedbackRepo.List(ctx, kind, status, pageSize, offset)
}

func (uc *FeedbackUseCase) SetStatus(ctx context.Context, kind entity.FeedbackKind, id string, status entity.FeedbackStatus) (*entity.Feedback, error) {
	if !kind.Valid() {
		return nil, errors.Validation(fmt.Sprintf("unknown feedback kind %q", kind))
	}
	if !status.Valid() {
		return nil, errors.Validation(fmt.Sprintf("unknown feedback status %q", status))
	}

	if err := uc.feedbackRepo.UpdateStatus(ctx, kind, id, status); err != nil {
		return nil, err
	}

	return uc.feedbackRepo.GetByID(ctx, kind, id)
}
