package entity

import (
	"fmt"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/valueobject"
)

type DNSRecordType string

const (
	DNSRecordTypeA    DNSRecordType = "A"
	DNSRecordTypeAAAA DNSRecordType = "AAAA"
	DNSRecordTypeTXT  DNSRecordType = "TXT"
)

// SupportedRecordTypes is the closed set of types a holder may attach.
var SupportedRecordTypes = []DNSRecordType{DNSRecordTypeA, DNSRecordTypeAAAA, DNSRecordTypeTXT}

func (t DNSRecordType) Supported() bool {
	for _, s := range SupportedRecordTypes {
		if t == s {
			return true
		}
	}
	return false
}

// IsAddress reports whether content of this type must be an IP address.
func (t DNSRecordType) IsAddress() bool {
	return t == DNSRecordTypeA || t == DNSRecordTypeAAAA
}

type DNSRecord struct {
	Type    DNSRecordType
	Name    string
	Content string
	TTL     int
	Proxied bool
}

func (r *DNSRecord) Validate() error {
	if !r.Type.Supported() {
		return fmt.Errorf("%w: dns record type %s", domain.ErrInvalidType, r.Type)
	}
	if r.Type.IsAddress() {
		if _, ok := valueobject.ParseAddr(r.Content); !ok {
			return fmt.Errorf("%w: %q", domain.ErrInvalidIP, r.Content)
		}
		if !valueobject.IsPrivateAddr(r.Content) {
			return fmt.Errorf("%w: %s", domain.ErrPublicIP, r.Content)
		}
	}
	if r.Name == "" {
		return domain.RequiredField("name")
	}
	if r.TTL < 0 {
		return fmt.Errorf("%w: ttl must be non-negative", domain.ErrInvalidTTL)
	}
	return nil
}
