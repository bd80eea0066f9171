package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesWrappedCode(t *testing.T) {
	err := fmt.Errorf("approve: %w", InvalidStateTransition("approved", "rejected"))

	assert.True(t, Is(err, CodeInvalidStateTransition))
	assert.False(t, Is(err, CodeNotFound))
	assert.False(t, Is(stderrors.New("plain"), CodeInternal))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(Validation("quantity must be positive")))
	assert.True(t, IsValidation(InvalidRating(9)))
	assert.False(t, IsValidation(NotEligible("no approved request")))
}

func TestStatusCodes(t *testing.T) {
	cases := map[string]struct {
		err    *AppError
		status int
	}{
		"not found":        {NotFound("Product", nil), http.StatusNotFound},
		"invalid rating":   {InvalidRating(0), http.StatusBadRequest},
		"not eligible":     {NotEligible("x"), http.StatusForbidden},
		"already reviewed": {AlreadyReviewed("p1"), http.StatusConflict},
		"transition":       {InvalidStateTransition("rejected", "approved"), http.StatusConflict},
		"rate limited":     {TooManyRequests("slow down"), http.StatusTooManyRequests},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.err.Status)
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("rpc error")
	err := Internal("Failed to get product", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INTERNAL_ERROR: Failed to get product", err.Error())
}
