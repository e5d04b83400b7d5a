package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient is the identity provider: it answers whether a bearer token
// belongs to an authenticated staff session. Authorization beyond that is a
// surrounding concern, not handled here.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

func (f *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}
