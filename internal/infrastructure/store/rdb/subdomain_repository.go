package rdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/contract"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

// SubdomainRepository is a GORM-backed implementation of contract.SubdomainStore.
type SubdomainRepository struct {
	db *gorm.DB
}

func NewSubdomainRepository(db *gorm.DB) *SubdomainRepository {
	return &SubdomainRepository{db: db}
}

func toRecord(s *entity.Subdomain) *SubdomainRecord {
	return &SubdomainRecord{
		Domain:    s.Domain,
		Secret:    s.Secret,
		CreatedAt: s.CreatedAt,
	}
}

func toEntity(r *SubdomainRecord) *entity.Subdomain {
	return &entity.Subdomain{
		Domain:    r.Domain,
		Secret:    r.Secret,
		CreatedAt: r.CreatedAt,
	}
}

// Insert is a single-row insert; the primary key on domain is the only
// guard against two issuances drawing the same label.
func (r *SubdomainRepository) Insert(ctx context.Context, s *entity.Subdomain) error {
	err := r.db.WithContext(ctx).Create(toRecord(s)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", domain.ErrSubdomainExists, s.Domain)
	}
	return err
}

func (r *SubdomainRepository) FindByDomain(ctx context.Context, name string) (*entity.Subdomain, error) {
	var rec SubdomainRecord
	if err := r.db.WithContext(ctx).First(&rec, "domain = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubdomainNotFound
		}
		return nil, err
	}
	return toEntity(&rec), nil
}

func (r *SubdomainRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *SubdomainRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ensure interface satisfaction.
var _ contract.SubdomainStore = (*SubdomainRepository)(nil)
