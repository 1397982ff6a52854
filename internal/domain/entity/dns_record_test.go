package entity

import (
	"errors"
	"testing"

	"github.com/lite-lake/subdomaind/internal/domain"
)

func TestDNSRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  DNSRecord
		wantErr error
	}{
		{
			name:    "unsupported type",
			record:  DNSRecord{Type: "CNAME", Name: "0a1b2c3d", Content: "example.com", TTL: 3600},
			wantErr: domain.ErrInvalidType,
		},
		{
			name:    "lowercase type",
			record:  DNSRecord{Type: "a", Name: "0a1b2c3d", Content: "192.168.1.5", TTL: 3600},
			wantErr: domain.ErrInvalidType,
		},
		{
			name:    "public A",
			record:  DNSRecord{Type: DNSRecordTypeA, Name: "0a1b2c3d", Content: "8.8.8.8", TTL: 3600},
			wantErr: domain.ErrPublicIP,
		},
		{
			name:    "public AAAA",
			record:  DNSRecord{Type: DNSRecordTypeAAAA, Name: "0a1b2c3d", Content: "2001:4860:4860::8888", TTL: 3600},
			wantErr: domain.ErrPublicIP,
		},
		{
			name:    "A with hostname",
			record:  DNSRecord{Type: DNSRecordTypeA, Name: "0a1b2c3d", Content: "router.local", TTL: 3600},
			wantErr: domain.ErrInvalidIP,
		},
		{
			name:    "missing name",
			record:  DNSRecord{Type: DNSRecordTypeTXT, Content: "hello", TTL: 3600},
			wantErr: domain.ErrRequired,
		},
		{
			name:    "negative ttl",
			record:  DNSRecord{Type: DNSRecordTypeTXT, Name: "0a1b2c3d", Content: "hello", TTL: -1},
			wantErr: domain.ErrInvalidTTL,
		},
		{
			name:    "private A",
			record:  DNSRecord{Type: DNSRecordTypeA, Name: "0a1b2c3d", Content: "192.168.1.5", TTL: 3600},
			wantErr: nil,
		},
		{
			name:    "private AAAA",
			record:  DNSRecord{Type: DNSRecordTypeAAAA, Name: "0a1b2c3d", Content: "fd00::5", TTL: 3600},
			wantErr: nil,
		},
		{
			name:    "TXT anything",
			record:  DNSRecord{Type: DNSRecordTypeTXT, Name: "0a1b2c3d", Content: "8.8.8.8", TTL: 3600},
			wantErr: nil,
		},
		{
			name:    "TXT empty content",
			record:  DNSRecord{Type: DNSRecordTypeTXT, Name: "0a1b2c3d", Content: "", TTL: 3600},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
