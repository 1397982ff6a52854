package contract

import (
	"context"

	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

// SubdomainStore persists subdomain records. Insert must fail with an
// error wrapping domain.ErrSubdomainExists when the domain is taken, and
// FindByDomain must return domain.ErrSubdomainNotFound when nothing matches.
type SubdomainStore interface {
	Insert(ctx context.Context, sub *entity.Subdomain) error
	FindByDomain(ctx context.Context, domain string) (*entity.Subdomain, error)
	Close() error
}
