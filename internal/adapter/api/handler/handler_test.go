package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmarket/internal/adapter/api"
	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/domain/entity"
	"localmarket/pkg/errors"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = api.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealthReportsFailingChecks(t *testing.T) {
	h := NewHealthHandler(map[string]HealthCheck{
		"firestore": func(context.Context) error { return nil },
		"redis":     func(context.Context) error { return fmt.Errorf("connection refused") },
	})

	c, rec := newContext(http.MethodGet, "/health", "")
	require.NoError(t, h.CheckHealth(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"degraded"`)
	assert.Contains(t, rec.Body.String(), "connection refused")

	h = NewHealthHandler(map[string]HealthCheck{"firestore": func(context.Context) error { return nil }})
	c, rec = newContext(http.MethodGet, "/health", "")
	require.NoError(t, h.CheckHealth(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParseProductFilter(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/v1/products?category=dairy&minPrice=2.5&inStock=true&q=%20goat%20", "")

	f, err := parseProductFilter(c)
	require.NoError(t, err)
	assert.Equal(t, "dairy", f.Category)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 2.5, *f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	require.NotNil(t, f.InStock)
	assert.True(t, *f.InStock)
	assert.Equal(t, "goat", f.SearchQuery)

	c, _ = newContext(http.MethodGet, "/v1/products?maxPrice=cheap", "")
	_, err = parseProductFilter(c)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	c, _ = newContext(http.MethodGet, "/v1/products?inStock=maybe", "")
	_, err = parseProductFilter(c)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestHandlersRequireSession(t *testing.T) {
	h := NewRequestHandler(nil, nil)

	c, rec := newContext(http.MethodGet, "/v1/requests/mine", "")
	require.NoError(t, h.ListMine(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetRequestStatusRejectsUnknownStatus(t *testing.T) {
	h := NewRequestHandler(nil, nil)

	c, rec := newContext(http.MethodPatch, "/v1/requests/r1/status", `{"status":"pending"}`)
	middleware.SetSession(c, entity.Session{UserID: "seller-user"})
	require.NoError(t, h.SetStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "status must be one of: approved rejected")
}

func TestNearbyValidatesCoordinates(t *testing.T) {
	h := NewSellerHandler(nil, nil)

	c, rec := newContext(http.MethodGet, "/v1/sellers/nearby?lat=91&lng=0", "")
	require.NoError(t, h.Nearby(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "lat must be a valid latitude")
}

func TestNearbyRadius(t *testing.T) {
	h := NewSellerHandler(nil, nil)

	for _, target := range []string{
		"/v1/sellers/nearby?lat=0&lng=0&radius=0",
		"/v1/sellers/nearby?lat=0&lng=0&radius=-5",
	} {
		c, rec := newContext(http.MethodGet, target, "")
		require.NoError(t, h.Nearby(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "radius must be greater than 0", target)
	}

	c, rec := newContext(http.MethodGet, "/v1/sellers/nearby?lat=0&lng=0&radius=far", "")
	require.NoError(t, h.Nearby(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, _ = newContext(http.MethodGet, "/v1/sellers/nearby?lat=0&lng=0", "")
	q, err := bindNearbyQuery(c)
	require.NoError(t, err)
	assert.Nil(t, q.Radius)
	assert.Equal(t, DefaultNearbyRadiusMiles, q.radius())

	c, _ = newContext(http.MethodGet, "/v1/sellers/nearby?lat=0&lng=0&radius=2.5", "")
	q, err = bindNearbyQuery(c)
	require.NoError(t, err)
	assert.Equal(t, 2.5, q.radius())
}
