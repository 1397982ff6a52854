package contract

import (
	"context"

	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

// IdentityProvider resolves a session token to the caller's identity.
// Unknown or expired tokens yield an error wrapping domain.ErrUnauthenticated.
type IdentityProvider interface {
	Name() string
	Identify(ctx context.Context, token string) (*entity.Identity, error)
}
