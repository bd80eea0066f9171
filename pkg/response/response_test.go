package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "localmarket/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErrorRendersAppError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, apperrors.AlreadyReviewed("p1")))

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decode(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, apperrors.CodeAlreadyReviewed, body.Error.Code)
}

func TestErrorRendersValidationErrors(t *testing.T) {
	type payload struct {
		Rating int `validate:"min=1,max=5"`
	}
	err := validator.New().Struct(payload{Rating: 7})
	require.Error(t, err)

	c, rec := newContext()
	require.NoError(t, Error(c, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, apperrors.CodeValidation, body.Error.Code)
	assert.Equal(t, "rating must be at most 5", body.Error.Message)
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "An unexpected error occurred", decode(t, rec).Error.Message)
}

func TestPaginatedTotalPages(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Paginated(c, []int{1, 2}, 41, 1, 20))

	var body struct {
		Data PaginatedResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Data.TotalPages)
}
