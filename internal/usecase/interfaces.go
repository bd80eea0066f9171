package usecase

import (
	"context"

	"localmarket/internal/domain/entity"
)

type FirebaseAuthClient interface {
	VerifyToken(ctx context.Context, token string) (*entity.Session, error)
}

// EventPublisher fans request status changes out to other services.
type EventPublisher interface {
	PublishRequestStatus(ctx context.Context, event entity.RequestStatusChanged) error
}

// NotificationStore keeps the set of request ids a buyer has not looked at yet.
type NotificationStore interface {
	AddUnseen(ctx context.Context, userID, requestID string) error
	ListUnseen(ctx context.Context, userID string) ([]string, error)
	ClearUnseen(ctx context.Context, userID string) error
}

// Pusher delivers a message to one live connection.
type Pusher interface {
	Push(message interface{})
}

// UserNotifier delivers a message to every live connection of a user.
type UserNotifier interface {
	SendToUser(userID string, message interface{})
}

type nopPublisher struct{}

// NewNopPublisher is used when no broker is configured.
func NewNopPublisher() EventPublisher {
	return nopPublisher{}
}

func (nopPublisher) PublishRequestStatus(context.Context, entity.RequestStatusChanged) error {
	return nil
}
