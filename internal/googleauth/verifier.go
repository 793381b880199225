package googleauth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// Identity is the verified subset of a Google ID token's claims.
type Identity struct {
	Email         string
	GivenName     string
	FamilyName    string
	EmailVerified bool
	SubjectID     string
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// IDTokenVerifier validates Google ID tokens against the configured OAuth
// client id. One instance serves the whole process.
type IDTokenVerifier struct {
	clientID string
}

func NewIDTokenVerifier(clientID string) *IDTokenVerifier {
	return &IDTokenVerifier{clientID: clientID}
}

func (v *IDTokenVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("validate id token: %w", err)
	}

	id := &Identity{SubjectID: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		id.Email = email
	}
	if name, ok := payload.Claims["given_name"].(string); ok {
		id.GivenName = name
	}
	if name, ok := payload.Claims["family_name"].(string); ok {
		id.FamilyName = name
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		id.EmailVerified = verified
	}

	return id, nil
}

var _ Verifier = (*IDTokenVerifier)(nil)
