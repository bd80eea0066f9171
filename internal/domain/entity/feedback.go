package entity

import (
	"time"
)

type FeedbackKind string

const (
	FeedbackBug        FeedbackKind = "bug"
	FeedbackSuggestion FeedbackKind = "suggestion"
)

func (k FeedbackKind) Valid() bool {
	return k == FeedbackBug || k == FeedbackSuggestion
}

type FeedbackStatus string

const (
	FeedbackOpen      FeedbackStatus = "open"
	FeedbackInReview  FeedbackStatus = "in_review"
	FeedbackResolved  FeedbackStatus = "resolved"
	FeedbackDismissed FeedbackStatus = "dismissed"
)

func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackOpen, FeedbackInReview, FeedbackResolved, FeedbackDismissed:
		return true
	}
	return false
}

// Feedback is a bug report or a suggestion, depending on Kind.
type Feedback struct {
	ID          string         `json:"id" firestore:"id"`
	Kind        FeedbackKind   `json:"kind" firestore:"kind"`
	UserID      string         `json:"user_id" firestore:"userId"`
	UserEmail   string         `json:"user_email" firestore:"userEmail"`
	Title       string         `json:"title" firestore:"title"`
	Description string         `json:"description" firestore:"description"`
	Status      FeedbackStatus `json:"status" firestore:"status"`
	CreatedAt   time.Time      `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time      `json:"updated_at" firestore:"updatedAt"`
}
