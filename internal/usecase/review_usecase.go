package usecase

import (
	"context"
	"math"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	requestRepo repository.RequestRepository
	productRepo repository.ProductRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	requestRepo repository.RequestRepository,
	productRepo repository.ProductRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		requestRepo: requestRepo,
		productRepo: productRepo,
	}
}

type CreateReviewInput struct {
	ProductID   string `json:"-"`
	BuyerID     string `json:"-"`
	BuyerName   string `json:"-"`
	BuyerAvatar string `json:"-"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment" validate:"max=2000"`
}

type ReviewEligibility struct {
	CanReview   bool `json:"can_review"`
	HasReviewed bool `json:"has_reviewed"`
}

// CanReview is true once the buyer has at least one approved request for the product.
func (uc *ReviewUseCase) CanReview(ctx context.Context, buyerID, productID string) (bool, error) {
	return uc.requestRepo.HasApproved(ctx, buyerID, productID)
}

func (uc *ReviewUseCase) HasReviewed(ctx context.Context, buyerID, productID string) (bool, error) {
	return uc.reviewRepo.Exists(ctx, buyerID, productID)
}

func (uc *ReviewUseCase) Eligibility(ctx context.Context, buyerID, productID string) (*ReviewEligibility, error) {
	canReview, err := uc.CanReview(ctx, buyerID, productID)
	if err != nil {
		return nil, err
	}
	hasReviewed, err := uc.HasReviewed(ctx, buyerID, productID)
	if err != nil {
		return nil, err
	}
	return &ReviewEligibility{
		CanReview:   canReview && !hasReviewed,
		HasReviewed: hasReviewed,
	}, nil
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, input CreateReviewInput) (*entity.ProductReview, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.InvalidRating(input.Rating)
	}

	eligible, err := uc.CanReview(ctx, input.BuyerID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, errors.NotEligible("Only buyers with an approved request can review this product")
	}

	reviewed, err := uc.HasReviewed(ctx, input.BuyerID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, errors.AlreadyReviewed(input.ProductID)
	}

	review := &entity.ProductReview{
		ProductID:   input.ProductID,
		BuyerID:     input.BuyerID,
		BuyerName:   input.BuyerName,
		BuyerAvatar: input.BuyerAvatar,
		Rating:      input.Rating,
		Comment:     input.Comment,
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.recomputeRating(ctx, input.ProductID); err != nil {
		logger.Error().Err(err).Str("product_id", input.ProductID).Msg("failed to update product rating")
		return review, err
	}

	return review, nil
}

func (uc *ReviewUseCase) recomputeRating(ctx context.Context, productID string) error {
	reviews, err := uc.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return err
	}

	rating, count := averageRating(reviews)
	return uc.productRepo.UpdateRating(ctx, productID, rating, count)
}

// averageRating returns the mean rounded to one decimal place.
func averageRating(reviews []*entity.ProductReview) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10, len(reviews)
}

func (uc *ReviewUseCase) ListByProduct(ctx context.Context, productID string) ([]*entity.ProductReview, error) {
	return uc.reviewRepo.ListByProductID(ctx, productID)
}

func (uc *ReviewUseCase) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.ProductReview, error) {
	return uc.reviewRepo.ListByBuyerID(ctx, buyerID)
}
