package identity

import (
	"context"
	"crypto/subtle"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

type staticEntry struct {
	token    string
	identity entity.Identity
}

// StaticProvider serves a fixed token table from configuration. Meant for
// development setups and tests, not for production sessions.
type StaticProvider struct {
	entries []staticEntry
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Add(token string, id entity.Identity) *StaticProvider {
	p.entries = append(p.entries, staticEntry{token: token, identity: id})
	return p
}

func (p *StaticProvider) Name() string {
	return entity.IdentityProviderStatic
}

func (p *StaticProvider) Identify(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	for _, e := range p.entries {
		if subtle.ConstantTimeCompare([]byte(e.token), []byte(token)) == 1 {
			id := e.identity
			return &id, nil
		}
	}
	return nil, domain.ErrUnauthenticated
}
