package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Nerzal/gocloak/v13"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

// KeycloakProvider validates session tokens against a realm's userinfo
// endpoint. A verified email is what counts as a confirmed identity.
type KeycloakProvider struct {
	client *gocloak.GoCloak
	realm  string
}

func NewKeycloakProvider(baseURL, realm string) *KeycloakProvider {
	return &KeycloakProvider{
		client: gocloak.NewClient(baseURL),
		realm:  realm,
	}
}

func (p *KeycloakProvider) Name() string {
	return entity.IdentityProviderKeycloak
}

func (p *KeycloakProvider) Identify(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	info, err := p.client.GetUserInfo(ctx, token, p.realm)
	if err != nil {
		var apiErr *gocloak.APIError
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, apiErr.Message)
		}
		return nil, domain.WrapOp("keycloak userinfo", err)
	}
	if info == nil || gocloak.PString(info.Sub) == "" {
		return nil, fmt.Errorf("%w: userinfo without subject", domain.ErrUnauthenticated)
	}

	return &entity.Identity{
		ID:        gocloak.PString(info.Sub),
		Email:     gocloak.PString(info.Email),
		Confirmed: gocloak.PBool(info.EmailVerified),
	}, nil
}
