package identity

import (
	"fmt"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/contract"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

// New builds the identity provider named in cfg. lookup resolves
// environment-backed static tokens.
func New(cfg *entity.IdentityConfig, lookup func(string) (string, bool)) (contract.IdentityProvider, error) {
	switch cfg.Provider {
	case entity.IdentityProviderKeycloak:
		return NewKeycloakProvider(cfg.Keycloak.BaseURL, cfg.Keycloak.Realm), nil
	case entity.IdentityProviderStatic:
		p := NewStaticProvider()
		for i, s := range cfg.Static {
			token, err := s.Token.Resolve(lookup)
			if err != nil {
				return nil, fmt.Errorf("static[%d].token: %w", i, err)
			}
			p.Add(token, entity.Identity{ID: s.ID, Email: s.Email, Confirmed: s.Confirmed})
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedIdentity, cfg.Provider)
	}
}
