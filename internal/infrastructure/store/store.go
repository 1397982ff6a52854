package store

import (
	"context"
	"errors"
	"strings"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/contract"
	"github.com/lite-lake/subdomaind/internal/domain/retry"
	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
	"github.com/lite-lake/subdomaind/internal/infrastructure/store/file"
	"github.com/lite-lake/subdomaind/internal/infrastructure/store/rdb"
)

type Options struct {
	// Migrate creates the subdomains table when opening an RDB store.
	Migrate bool
	Retry   []retry.Option
}

// Open selects an adapter from the URL scheme: file:<path> for the YAML
// store, anything else is handed to rdb.OpenFromURL. Connecting is
// retried so the daemon can start alongside its database.
func Open(ctx context.Context, url string, opts Options) (contract.SubdomainStore, error) {
	if path, ok := strings.CutPrefix(url, "file:"); ok {
		if path == "" {
			return nil, domain.RequiredField("datastore file path")
		}
		return file.NewStore(path), nil
	}

	log := logger.FromContext(ctx)
	return retry.DoWithResult(ctx, func() (contract.SubdomainStore, error) {
		db, err := rdb.OpenFromURL(url)
		if err != nil {
			if errors.Is(err, domain.ErrUnsupportedStore) {
				return nil, retry.Permanent(err)
			}
			return nil, err
		}
		repo := rdb.NewSubdomainRepository(db)
		if err := repo.Ping(ctx); err != nil {
			_ = repo.Close()
			return nil, err
		}
		if opts.Migrate {
			if err := rdb.AutoMigrate(db); err != nil {
				_ = repo.Close()
				return nil, domain.WrapOp("migrate datastore", err)
			}
			log.Info("datastore schema up to date")
		}
		return repo, nil
	}, opts.Retry...)
}
