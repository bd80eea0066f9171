package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/domain/entity"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
	"localmarket/pkg/response"
)

// DefaultNearbyRadiusMiles applies when the radius query parameter is omitted.
const DefaultNearbyRadiusMiles = 10.0

type SellerHandler struct {
	sellerUseCase  *usecase.SellerUseCase
	productUseCase *usecase.ProductUseCase
}

func NewSellerHandler(sellerUseCase *usecase.SellerUseCase, productUseCase *usecase.ProductUseCase) *SellerHandler {
	return &SellerHandler{
		sellerUseCase:  sellerUseCase,
		productUseCase: productUseCase,
	}
}

type nearbyQuery struct {
	Lat   float64 `query:"lat" validate:"latitude"`
	Lng   float64 `query:"lng" validate:"longitude"`
	Limit int     `query:"limit" validate:"gte=0,lte=200"`
	// Radius is bound by hand so an explicit 0 is not mistaken for an omitted value.
	Radius *float64 `query:"-" validate:"omitempty,gt=0"`
}

func (q nearbyQuery) radius() float64 {
	if q.Radius == nil {
		return DefaultNearbyRadiusMiles
	}
	return *q.Radius
}

func bindNearbyQuery(c echo.Context) (nearbyQuery, error) {
	var q nearbyQuery
	if err := c.Bind(&q); err != nil {
		return q, errors.BadRequest("Invalid query parameters", err)
	}

	if c.QueryParam("radius") != "" {
		var radius float64
		if err := echo.QueryParamsBinder(c).Float64("radius", &radius).BindError(); err != nil {
			return q, errors.Validation("radius must be a number")
		}
		q.Radius = &radius
	}

	return q, c.Validate(&q)
}

func (h *SellerHandler) CreateSeller(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var input usecase.SellerInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.Error(c, err)
	}

	seller, err := h.sellerUseCase.CreateSeller(c.Request().Context(), session, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, seller)
}

func (h *SellerHandler) GetSeller(c echo.Context) error {
	seller, err := h.sellerUseCase.GetSeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, seller)
}

func (h *SellerHandler) GetSellerByUser(c echo.Context) error {
	seller, err := h.sellerUseCase.GetSellerByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, seller)
}

func (h *SellerHandler) UpdateSeller(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var input usecase.SellerInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.Error(c, err)
	}

	seller, err := h.sellerUseCase.UpdateSeller(c.Request().Context(), session, c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, seller)
}

func (h *SellerHandler) DeleteSeller(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.sellerUseCase.DeleteSeller(c.Request().Context(), session, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Seller deleted successfully",
	})
}

func (h *SellerHandler) Nearby(c echo.Context) error {
	q, err := bindNearbyQuery(c)
	if err != nil {
		return response.Error(c, err)
	}

	origin := entity.Location{Latitude: q.Lat, Longitude: q.Lng}
	sellers, err := h.sellerUseCase.Nearby(c.Request().Context(), origin, q.radius(), q.Limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, sellers)
}

func (h *SellerHandler) ListProducts(c echo.Context) error {
	products, err := h.productUseCase.ListBySeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}
