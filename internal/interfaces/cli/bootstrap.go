package cli

import (
	"context"
	"errors"

	"github.com/lite-lake/subdomaind/internal/application/handler"
	"github.com/lite-lake/subdomaind/internal/domain/contract"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
	"github.com/lite-lake/subdomaind/internal/infrastructure/dns"
	"github.com/lite-lake/subdomaind/internal/infrastructure/identity"
	"github.com/lite-lake/subdomaind/internal/infrastructure/metrics"
	"github.com/lite-lake/subdomaind/internal/infrastructure/store"
	"github.com/lite-lake/subdomaind/internal/interfaces/httpapi"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// app is the fully wired process: every collaborator is built here, once,
// before the first request is served.
type app struct {
	store    contract.SubdomainStore
	dns      contract.DNSProvider
	identity contract.IdentityProvider
	metrics  *metrics.Registry
	server   *httpapi.Server
}

func openStore(ctx context.Context, cfg *entity.Config, lookup func(string) (string, bool), migrate bool) (contract.SubdomainStore, error) {
	url, err := cfg.Datastore.URL.Resolve(lookup)
	if err != nil {
		return nil, err
	}
	return store.Open(ctx, url, store.Options{Migrate: migrate})
}

func bootstrap(ctx context.Context, cfg *entity.Config, lookup func(string) (string, bool), migrate bool) (*app, error) {
	st, err := openStore(ctx, cfg, lookup, migrate)
	if err != nil {
		return nil, err
	}

	provider, err := dns.NewFactory().Create(&cfg.DNS, lookup)
	if err != nil {
		return nil, errors.Join(err, st.Close())
	}

	ident, err := identity.New(&cfg.Identity, lookup)
	if err != nil {
		return nil, errors.Join(err, st.Close())
	}

	reg := metrics.NewRegistry()
	h := handler.New(st, provider, ident, handler.Config{
		Zone:          cfg.DNS.ZoneID,
		SessionCookie: cfg.Identity.SessionCookie,
		Policy:        cfg.Policy,
	}, handler.WithMetrics(reg))

	var health httpapi.HealthCheck
	if p, ok := st.(pinger); ok {
		health = p.Ping
	}

	return &app{
		store:    st,
		dns:      provider,
		identity: ident,
		metrics:  reg,
		server:   httpapi.NewServer(cfg.Server, h, reg, health),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
