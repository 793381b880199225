package identity

import (
	"context"

	domain "github.com/salonhub/salon-backend/internal/domain/identity"
	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/models"
)

// RefreshSession validates a presented refresh token against the single
// stored one. Rotation persists each newly-issued token, so a token that no
// longer matches is stale or already spent.
type RefreshSession struct {
	repo domain.Repository
}

func NewRefreshSession(repo domain.Repository) *RefreshSession {
	return &RefreshSession{repo: repo}
}

// Execute assumes the token signature was already verified; it only decides
// whether this exact token is still the live one for the user.
func (uc *RefreshSession) Execute(
	ctx context.Context,
	userID uint,
	presented string,
) (*models.User, error) {

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	if presented != user.RefreshToken {
		return nil, httperr.ErrBusiness("refresh_token_reused")
	}

	return user, nil
}
