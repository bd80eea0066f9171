package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmarket/internal/domain/entity"
)

func TestEnsureUserCreatesBuyerOnce(t *testing.T) {
	ctx := context.Background()
	users := newMemUserRepo()
	uc := NewUserUseCase(users)

	user, err := uc.EnsureUser(ctx, buyerSession)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, user.Role)
	assert.Equal(t, buyerSession.DisplayName, user.DisplayName)

	user.Role = entity.RoleAdmin
	require.NoError(t, users.Update(ctx, user))

	again, err := uc.GetMe(ctx, buyerSession)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, again.Role)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	uc := NewUserUseCase(newMemUserRepo())

	loc := &entity.Location{Latitude: 40.7, Longitude: -74, City: "New York"}
	user, err := uc.UpdateProfile(ctx, buyerSession, UpdateProfileInput{DisplayName: "Bea B.", Location: loc})
	require.NoError(t, err)
	assert.Equal(t, "Bea B.", user.DisplayName)
	assert.Equal(t, "New York", user.Location.City)
	assert.Equal(t, buyerSession.Email, user.Email)
}
