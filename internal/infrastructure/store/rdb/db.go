package rdb

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lite-lake/subdomaind/internal/domain"
)

// OpenFromURL opens a GORM DB based on a db-url string.
// Supported:
//   - postgres://... or postgresql://...  passed to the pgx driver as-is
//   - sqlite:<dsn>   e.g., sqlite:./subdomaind.db or sqlite::memory:
//   - sqlite3:<dsn>  alias of sqlite
func OpenFromURL(dbURL string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	}

	switch {
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		return gorm.Open(postgres.Open(dbURL), cfg)
	case strings.HasPrefix(dbURL, "sqlite:"):
		return gorm.Open(sqlite.Open(sqliteDSN(strings.TrimPrefix(dbURL, "sqlite:"))), cfg)
	case strings.HasPrefix(dbURL, "sqlite3:"):
		return gorm.Open(sqlite.Open(sqliteDSN(strings.TrimPrefix(dbURL, "sqlite3:"))), cfg)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedStore, redactURL(dbURL))
	}
}

func sqliteDSN(dsn string) string {
	if dsn == "" {
		return "./subdomaind.db"
	}
	return dsn
}

// AutoMigrate applies schema migrations for all RDB models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&SubdomainRecord{})
}

// redactURL keeps the scheme only, so credentials in a DSN never reach logs.
func redactURL(dbURL string) string {
	if i := strings.Index(dbURL, ":"); i >= 0 {
		return dbURL[:i] + ":***"
	}
	return "***"
}
