package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmarket/internal/domain/entity"
	"localmarket/pkg/errors"
)

func TestFeedbackLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := NewFeedbackUseCase(&memFeedbackRepo{})

	bug, err := uc.Submit(ctx, buyerSession, entity.FeedbackBug, SubmitFeedbackInput{Title: "Map blank", Description: "Nearby map never loads"})
	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackOpen, bug.Status)
	assert.Equal(t, buyerSession.Email, bug.UserEmail)

	_, err = uc.Submit(ctx, buyerSession, entity.FeedbackSuggestion, SubmitFeedbackInput{Title: "Dark mode", Description: "Please"})
	require.NoError(t, err)

	bugs, total, err := uc.List(ctx, entity.FeedbackBug, "", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, bugs, 1)

	resolved, err := uc.SetStatus(ctx, entity.FeedbackBug, bug.ID, entity.FeedbackResolved)
	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackResolved, resolved.Status)

	open, total, err := uc.List(ctx, entity.FeedbackBug, entity.FeedbackOpen, 1, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, open)
}

func TestFeedbackRejectsUnknownValues(t *testing.T) {
	ctx := context.Background()
	uc := NewFeedbackUseCase(&memFeedbackRepo{})

	_, err := uc.Submit(ctx, buyerSession, "praise", SubmitFeedbackInput{Title: "x", Description: "y"})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = uc.SetStatus(ctx, entity.FeedbackBug, "feedback-1", "closed")
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = uc.SetStatus(ctx, entity.FeedbackBug, "missing", entity.FeedbackDismissed)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}
