package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/logger"
)

const (
	MessageTypeRequestStatus  = "request_status"
	MessageTypeRequestCreated = "request_created"
)

type NotificationUseCase struct {
	requestRepo repository.RequestRepository
	store       NotificationStore
	log         zerolog.Logger
}

func NewNotificationUseCase(
	requestRepo repository.RequestRepository,
	store NotificationStore,
) *NotificationUseCase {
	return &NotificationUseCase{
		requestRepo: requestRepo,
		store:       store,
		log:         logger.With("notifications"),
	}
}

// RequestStatusMessage is pushed to the buyer's live connections.
type RequestStatusMessage struct {
	Type        string               `json:"type"`
	RequestID   string               `json:"request_id"`
	ProductID   string               `json:"product_id"`
	ProductName string               `json:"product_name"`
	Status      entity.RequestStatus `json:"status"`
}

// Watch follows the buyer's requests until ctx ends. Every request that leaves
// pending is recorded as unseen and pushed to pusher.
func (uc *NotificationUseCase) Watch(ctx context.Context, buyerID string, pusher Pusher) error {
	tracker := newStatusTracker()
	return uc.requestRepo.WatchByBuyerID(ctx, buyerID, func(requests []*entity.ProductRequest) {
		for _, request := range tracker.answered(requests) {
			uc.notify(ctx, buyerID, request, pusher)
		}
	})
}

func (uc *NotificationUseCase) notify(ctx context.Context, buyerID string, request *entity.ProductRequest, pusher Pusher) {
	if err := uc.store.AddUnseen(ctx, buyerID, request.ID); err != nil {
		uc.log.Warn().Err(err).Str("request_id", request.ID).Msg("failed to store unseen notification")
	}

	if pusher != nil {
		pusher.Push(RequestStatusMessage{
			Type:        MessageTypeRequestStatus,
			RequestID:   request.ID,
			ProductID:   request.ProductID,
			ProductName: request.ProductName,
			Status:      request.Status,
		})
	}
}

func (uc *NotificationUseCase) Unseen(ctx context.Context, userID string) ([]string, error) {
	return uc.store.ListUnseen(ctx, userID)
}

func (uc *NotificationUseCase) MarkSeen(ctx context.Context, userID string) error {
	return uc.store.ClearUnseen(ctx, userID)
}

// statusTracker remembers the last status seen per request. The first snapshot
// only primes it, so a reconnect does not replay old answers.
type statusTracker struct {
	last map[string]entity.RequestStatus
}

func newStatusTracker() *statusTracker {
	return &statusTracker{last: make(map[string]entity.RequestStatus)}
}

func (t *statusTracker) answered(requests []*entity.ProductRequest) []*entity.ProductRequest {
	var changed []*entity.ProductRequest
	for _, request := range requests {
		prev, known := t.last[request.ID]
		t.last[request.ID] = request.Status

		if known && prev != request.Status && request.Status != entity.RequestPending {
			changed = append(changed, request)
		}
	}
	return changed
}
