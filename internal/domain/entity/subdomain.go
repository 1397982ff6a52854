package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/lite-lake/subdomaind/internal/domain"
)

// Subdomain binds a generated label to its bearer secret. It is written
// once at issuance and never mutated.
type Subdomain struct {
	Domain    string    `yaml:"domain"`
	Secret    string    `yaml:"secret"`
	CreatedAt time.Time `yaml:"created_at"`
}

// SubdomainLabel returns the last dot-separated label of a dotted path,
// which is the key a Subdomain is stored under.
func SubdomainLabel(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}

func (s *Subdomain) Validate() error {
	if !isLowerHex(s.Domain, domain.DomainLength) {
		return fmt.Errorf("%w: %q must be %d lowercase hex characters", domain.ErrInvalidDomain, s.Domain, domain.DomainLength)
	}
	if !isLowerHex(s.Secret, domain.SecretLength) {
		return fmt.Errorf("%w: must be %d lowercase hex characters", domain.ErrInvalidSecret, domain.SecretLength)
	}
	return nil
}

func isLowerHex(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
