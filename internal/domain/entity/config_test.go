package entity

import (
	"errors"
	"testing"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/valueobject"
)

func validConfig() *Config {
	cfg := &Config{
		DNS: DNSConfig{
			ZoneID: "zone-123",
			Credentials: map[string]valueobject.SecretRef{
				"api_token": {Env: "CLOUDFLARE_TOKEN"},
			},
		},
		Identity: IdentityConfig{
			Keycloak: KeycloakConfig{BaseURL: "https://sso.example.com", Realm: "lan"},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Server.Listen != DefaultListen {
		t.Errorf("Listen = %q, want %q", cfg.Server.Listen, DefaultListen)
	}
	if cfg.Server.Path != DefaultHandlerPath {
		t.Errorf("Path = %q, want %q", cfg.Server.Path, DefaultHandlerPath)
	}
	if cfg.DNS.Provider != DNSProviderCloudflare {
		t.Errorf("DNS.Provider = %q, want %q", cfg.DNS.Provider, DNSProviderCloudflare)
	}
	if cfg.Datastore.URL.Plain != DefaultDatastoreURL {
		t.Errorf("Datastore.URL = %q, want %q", cfg.Datastore.URL.Plain, DefaultDatastoreURL)
	}
	if cfg.Policy.RequireConfirmedOnAttach || cfg.Policy.ConcealNotFound {
		t.Errorf("policy defaults should be off, got %+v", cfg.Policy)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"missing zone", func(c *Config) { c.DNS.ZoneID = "" }, domain.ErrRequired},
		{"unknown provider", func(c *Config) { c.DNS.Provider = "route53" }, domain.ErrUnsupportedProvider},
		{"empty credential", func(c *Config) {
			c.DNS.Credentials["api_token"] = valueobject.SecretRef{}
		}, domain.ErrEmptyValue},
		{"relative path", func(c *Config) { c.Server.Path = "api" }, domain.ErrInvalidURL},
		{"tls cert without key", func(c *Config) { c.Server.TLS.CertFile = "tls.crt" }, domain.ErrRequired},
		{"tls cert and acme", func(c *Config) {
			c.Server.TLS = TLSConfig{CertFile: "tls.crt", KeyFile: "tls.key", ACME: ACMEConfig{Hosts: []string{"a.example.com"}, CacheDir: "/var/cache"}}
		}, domain.ErrInvalidType},
		{"acme without cache dir", func(c *Config) {
			c.Server.TLS.ACME.Hosts = []string{"a.example.com"}
		}, domain.ErrRequired},
		{"acme", func(c *Config) {
			c.Server.TLS.ACME = ACMEConfig{Hosts: []string{"a.example.com"}, CacheDir: "/var/cache"}
		}, nil},
		{"keycloak without realm", func(c *Config) { c.Identity.Keycloak.Realm = "" }, domain.ErrRequired},
		{"unknown identity provider", func(c *Config) { c.Identity.Provider = "ldap" }, domain.ErrUnsupportedIdentity},
		{"static without id", func(c *Config) {
			c.Identity.Provider = IdentityProviderStatic
			c.Identity.Static = []StaticIdentity{{Token: valueobject.SecretRef{Plain: "t"}}}
		}, domain.ErrRequired},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, domain.ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
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
