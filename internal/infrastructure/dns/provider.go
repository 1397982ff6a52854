package dns

import (
	"fmt"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/contract"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

type Provider = contract.DNSProvider

type DNSRecord = entity.DNSRecord

// createFailed tags a provider error with domain.ErrDNSError so callers can
// match on the category without knowing the provider.
func createFailed(provider string, err error) contract.CreateResult {
	return contract.CreateFailed(domain.NewOpError(provider+" create record", fmt.Errorf("%w: %w", domain.ErrDNSError, err)))
}

// ttlOrDefault keeps a zero TTL from being sent as "unset" to providers
// that would otherwise pick their own default.
func ttlOrDefault(ttl int) int {
	if ttl <= 0 {
		return domain.RecordTTL
	}
	return ttl
}
