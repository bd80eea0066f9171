package usecase

import (
	"context"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/internal/domain/service"
	"localmarket/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
	}
}

type ProductInput struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	// Quantity is optional; when set it decides InStock.
	Quantity *int  `json:"quantity" validate:"omitempty,gte=0"`
	InStock  *bool `json:"in_stock"`
}

func (input ProductInput) applyTo(product *entity.Product) error {
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.Tags = input.Tags
	product.Images = input.Images

	switch {
	case input.Quantity != nil:
		product.SetQuantity(*input.Quantity)
	case input.InStock != nil:
		if err := checkStock(product, *input.InStock); err != nil {
			return err
		}
		product.InStock = *input.InStock
	}
	return nil
}

// checkStock rejects marking a product in stock while its tracked quantity is zero.
func checkStock(product *entity.Product, inStock bool) error {
	if inStock && product.HasQuantity() && *product.Quantity == 0 {
		return errors.Validation("set a quantity above 0 before marking the product in stock")
	}
	return nil
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, session entity.Session, input ProductInput) (*entity.Product, error) {
	seller, err := uc.sessionSeller(ctx, session)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		SellerID: seller.ID,
		InStock:  true,
	}
	if err := input.applyTo(product); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	return uc.productRepo.ListBySellerID(ctx, sellerID)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, session entity.Session, id string, input ProductInput) (*entity.Product, error) {
	product, err := uc.ownedProduct(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if err := input.applyTo(product); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// SetStock flips availability. A product tracking quantity cannot be marked in
// stock while its quantity is zero.
func (uc *ProductUseCase) SetStock(ctx context.Context, session entity.Session, id string, inStock bool) (*entity.Product, error) {
	product, err := uc.ownedProduct(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if err := checkStock(product, inStock); err != nil {
		return nil, err
	}
	product.InStock = inStock

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) SetQuantity(ctx context.Context, session entity.Session, id string, quantity int) (*entity.Product, error) {
	if quantity < 0 {
		return nil, errors.Validation("quantity must be at least 0")
	}

	product, err := uc.ownedProduct(ctx, session, id)
	if err != nil {
		return nil, err
	}

	product.SetQuantity(quantity)

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, session entity.Session, id string) error {
	if _, err := uc.ownedProduct(ctx, session, id); err != nil {
		return err
	}
	return uc.productRepo.Delete(ctx, id)
}

// Search loads the whole catalog and filters it in memory.
func (uc *ProductUseCase) Search(ctx context.Context, filter service.ProductFilter) ([]*entity.Product, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return service.FilterProducts(products, filter), nil
}

func (uc *ProductUseCase) sessionSeller(ctx context.Context, session entity.Session) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByUserID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.Forbidden("A seller profile is required", err)
		}
		return nil, err
	}
	return seller, nil
}

func (uc *ProductUseCase) ownedProduct(ctx context.Context, session entity.Session, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	seller, err := uc.sessionSeller(ctx, session)
	if err != nil {
		return nil, err
	}

	if product.SellerID != seller.ID {
		return nil, errors.Forbidden("You don't own this product", nil)
	}

	return product, nil
}
