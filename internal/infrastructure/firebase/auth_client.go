package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"localmarket/internal/domain/entity"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// VerifyToken checks a Firebase ID token and returns the session it carries.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (*entity.Session, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return sessionFromClaims(result.UID, result.Claims), nil
}

func sessionFromClaims(uid string, claims map[string]interface{}) *entity.Session {
	session := &entity.Session{UserID: uid}
	if v, ok := claims["email"].(string); ok {
		session.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		session.DisplayName = v
	}
	if v, ok := claims["picture"].(string); ok {
		session.PhotoURL = v
	}
	return session
}
