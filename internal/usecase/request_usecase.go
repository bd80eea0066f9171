package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
)

type RequestUseCase struct {
	requestRepo repository.RequestRepository
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
	publisher   EventPublisher
	notifier    UserNotifier
}

func NewRequestUseCase(
	requestRepo repository.RequestRepository,
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	publisher EventPublisher,
	notifier UserNotifier,
) *RequestUseCase {
	if publisher == nil {
		publisher = NewNopPublisher()
	}
	return &RequestUseCase{
		requestRepo: requestRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		publisher:   publisher,
		notifier:    notifier,
	}
}

type CreateRequestInput struct {
	SellerID  string `json:"seller_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
	Message   string `json:"message" validate:"max=1000"`
}

// CreateRequest records a pending purchase request. Stock is checked against the
// current product but not reserved, so concurrent pending requests may together
// exceed what is available.
func (uc *RequestUseCase) CreateRequest(ctx context.Context, session entity.Session, input CreateRequestInput) (*entity.ProductRequest, error) {
	if input.Quantity <= 0 {
		return nil, errors.Validation("quantity must be greater than 0")
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if product.SellerID != input.SellerID {
		return nil, errors.Validation("product does not belong to this seller")
	}

	seller, err := uc.sellerRepo.GetByID(ctx, product.SellerID)
	if err != nil {
		return nil, err
	}
	if seller.UserID == session.UserID {
		return nil, errors.Validation("you cannot request your own product")
	}

	if !product.InStock {
		return nil, errors.Validation("product is out of stock")
	}
	if product.HasQuantity() && input.Quantity > *product.Quantity {
		return nil, errors.Validation(fmt.Sprintf("only %d available", *product.Quantity))
	}

	total := decimal.NewFromFloat(product.Price).
		Mul(decimal.NewFromInt(int64(input.Quantity))).
		Round(2)

	request := &entity.ProductRequest{
		BuyerID:      session.UserID,
		BuyerName:    session.Name(),
		SellerID:     product.SellerID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		Quantity:     input.Quantity,
		TotalPrice:   total.InexactFloat64(),
		Message:      input.Message,
		Status:       entity.RequestPending,
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	logger.Info().
		Str("request_id", request.ID).
		Str("product_id", request.ProductID).
		Int("quantity", request.Quantity).
		Msg("purchase request created")

	if uc.notifier != nil {
		uc.notifier.SendToUser(seller.UserID, RequestStatusMessage{
			Type:        MessageTypeRequestCreated,
			RequestID:   request.ID,
			ProductID:   request.ProductID,
			ProductName: request.ProductName,
			Status:      request.Status,
		})
	}

	return request, nil
}

// SetStatus answers a pending request. Approval decrements the product quantity
// in the same write as the status change.
func (uc *RequestUseCase) SetStatus(ctx context.Context, session entity.Session, requestID string, status entity.RequestStatus) (*entity.ProductRequest, error) {
	if !status.Valid() {
		return nil, errors.Validation(fmt.Sprintf("unknown status %q", status))
	}

	seller, err := uc.sessionSeller(ctx, session)
	if err != nil {
		return nil, err
	}

	request, err := uc.requestRepo.Transition(ctx, requestID, func(request *entity.ProductRequest, product *entity.Product) error {
		if request.SellerID != seller.ID {
			return errors.Forbidden("You can't answer this request", nil)
		}
		if !request.Status.CanTransitionTo(status) {
			return errors.InvalidStateTransition(string(request.Status), string(status))
		}

		now := time.Now()
		request.Status = status
		request.RespondedAt = &now

		if status == entity.RequestApproved && product != nil {
			product.Decrement(request.Quantity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, request)

	return request, nil
}

func (uc *RequestUseCase) publish(ctx context.Context, request *entity.ProductRequest) {
	event := entity.RequestStatusChanged{
		RequestID:  request.ID,
		BuyerID:    request.BuyerID,
		SellerID:   request.SellerID,
		ProductID:  request.ProductID,
		Quantity:   request.Quantity,
		Status:     request.Status,
		OccurredAt: time.Now(),
	}

	if err := uc.publisher.PublishRequestStatus(ctx, event); err != nil {
		logger.Warn().Err(err).Str("request_id", request.ID).Msg("failed to publish request status")
	}
}

func (uc *RequestUseCase) ListBySeller(ctx context.Context, session entity.Session, status entity.RequestStatus) ([]*entity.ProductRequest, error) {
	if status != "" && !status.Valid() {
		return nil, errors.Validation(fmt.Sprintf("unknown status %q", status))
	}

	seller, err := uc.sessionSeller(ctx, session)
	if err != nil {
		return nil, err
	}

	return uc.requestRepo.ListBySellerID(ctx, seller.ID, status)
}

func (uc *RequestUseCase) ListByBuyer(ctx context.Context, session entity.Session, status entity.RequestStatus) ([]*entity.ProductRequest, error) {
	if status != "" && !status.Valid() {
		return nil, errors.Validation(fmt.Sprintf("unknown status %q", status))
	}
	return uc.requestRepo.ListByBuyerID(ctx, session.UserID, status)
}

// GetRequest is visible to the buyer and to the seller it was sent to.
func (uc *RequestUseCase) GetRequest(ctx context.Context, session entity.Session, id string) (*entity.ProductRequest, error) {
	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.BuyerID == session.UserID {
		return request, nil
	}

	seller, err := uc.sellerRepo.GetByUserID(ctx, session.UserID)
	if err == nil && seller.ID == request.SellerID {
		return request, nil
	}

	return nil, errors.Forbidden("You can't view this request", nil)
}

func (uc *RequestUseCase) sessionSeller(ctx context.Context, session entity.Session) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByUserID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.Forbidden("A seller profile is required", err)
		}
		return nil, err
	}
	return seller, nil
}
