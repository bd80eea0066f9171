package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"localmarket/internal/domain/service"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
	"localmarket/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type setStockRequest struct {
	InStock *bool `json:"in_stock" validate:"required"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var input usecase.ProductInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), session, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

// ListProducts serves the catalog. Query: category, minPrice, maxPrice, inStock, q.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return response.Error(c, err)
	}

	products, err := h.productUseCase.Search(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func parseProductFilter(c echo.Context) (service.ProductFilter, error) {
	filter := service.ProductFilter{
		Category:    c.QueryParam("category"),
		SearchQuery: strings.TrimSpace(c.QueryParam("q")),
	}

	for name, dst := range map[string]**float64{
		"minPrice": &filter.MinPrice,
		"maxPrice": &filter.MaxPrice,
	} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.Validation(name + " must be a number")
		}
		*dst = &v
	}

	if raw := c.QueryParam("inStock"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.Validation("inStock must be true or false")
		}
		filter.InStock = &v
	}

	return filter, nil
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var input usecase.ProductInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), session, c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) SetStock(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req setStockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.SetStock(c.Request().Context(), session, c.Param("id"), *req.InStock)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) SetQuantity(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req setQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.SetQuantity(c.Request().Context(), session, c.Param("id"), *req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), session, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}
