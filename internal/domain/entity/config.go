package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/valueobject"
)

const (
	DNSProviderCloudflare = "cloudflare"
	DNSProviderAliyun     = "aliyun"
	DNSProviderTencent    = "tencent"

	IdentityProviderKeycloak = "keycloak"
	IdentityProviderStatic   = "static"
)

const (
	DefaultListen            = ":8080"
	DefaultHandlerPath       = "/api/configure-subdomain"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultSessionCookie     = "sb-access-token"
	DefaultDatastoreURL      = "sqlite:./subdomaind.db"
)

// Config is the process-wide configuration, built once at startup and
// injected into the components that need it.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Datastore DatastoreConfig `yaml:"datastore"`
	DNS       DNSConfig       `yaml:"dns"`
	Identity  IdentityConfig  `yaml:"identity"`
	Policy    Policy          `yaml:"policy"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Listen            string        `yaml:"listen"`
	Path              string        `yaml:"path"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	TLS               TLSConfig     `yaml:"tls"`
}

// TLSConfig enables HTTPS from a certificate pair on disk or from
// certificates obtained over ACME. Leaving both empty serves plain HTTP.
type TLSConfig struct {
	CertFile string     `yaml:"cert_file"`
	KeyFile  string     `yaml:"key_file"`
	ACME     ACMEConfig `yaml:"acme"`
}

type ACMEConfig struct {
	Hosts        []string `yaml:"hosts"`
	CacheDir     string   `yaml:"cache_dir"`
	Email        string   `yaml:"email"`
	DirectoryURL string   `yaml:"directory_url"`
}

func (t *TLSConfig) Enabled() bool {
	return t.CertFile != "" || t.KeyFile != "" || len(t.ACME.Hosts) > 0
}

func (t *TLSConfig) Validate() error {
	if (t.CertFile == "") != (t.KeyFile == "") {
		return domain.RequiredField("cert_file and key_file together")
	}
	if t.CertFile != "" && len(t.ACME.Hosts) > 0 {
		return fmt.Errorf("%w: cert_file and acme are mutually exclusive", domain.ErrInvalidType)
	}
	if len(t.ACME.Hosts) > 0 && t.ACME.CacheDir == "" {
		return domain.RequiredField("acme.cache_dir")
	}
	return nil
}

type DatastoreConfig struct {
	URL valueobject.SecretRef `yaml:"url"`
}

type DNSConfig struct {
	Provider    string                           `yaml:"provider"`
	ZoneID      string                           `yaml:"zone_id"`
	Credentials map[string]valueobject.SecretRef `yaml:"credentials"`
}

type IdentityConfig struct {
	Provider      string           `yaml:"provider"`
	SessionCookie string           `yaml:"session_cookie"`
	Keycloak      KeycloakConfig   `yaml:"keycloak"`
	Static        []StaticIdentity `yaml:"static,omitempty"`
}

type KeycloakConfig struct {
	BaseURL string `yaml:"base_url"`
	Realm   string `yaml:"realm"`
}

// StaticIdentity maps a fixed session token to an identity.
type StaticIdentity struct {
	Token     valueobject.SecretRef `yaml:"token"`
	ID        string                `yaml:"id"`
	Email     string                `yaml:"email,omitempty"`
	Confirmed bool                  `yaml:"confirmed"`
}

// Policy holds the behaviours that are deliberate choices rather than
// fixed rules. The zero value matches the historical behaviour.
type Policy struct {
	// RequireConfirmedOnAttach re-checks identity confirmation when
	// attaching records, not only when issuing subdomains.
	RequireConfirmedOnAttach bool `yaml:"require_confirmed_on_attach"`
	// ConcealNotFound answers unknown subdomains with the same
	// permission error as a wrong secret.
	ConcealNotFound bool `yaml:"conceal_not_found"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) ApplyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	if c.Server.Path == "" {
		c.Server.Path = DefaultHandlerPath
	}
	if c.Server.ReadHeaderTimeout == 0 {
		c.Server.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if c.Datastore.URL.IsZero() {
		c.Datastore.URL = valueobject.SecretRef{Plain: DefaultDatastoreURL}
	}
	if c.DNS.Provider == "" {
		c.DNS.Provider = DNSProviderCloudflare
	}
	if c.Identity.Provider == "" {
		c.Identity.Provider = IdentityProviderKeycloak
	}
	if c.Identity.SessionCookie == "" {
		c.Identity.SessionCookie = DefaultSessionCookie
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Server.Path, "/") {
		return fmt.Errorf("server.path: %w: must start with /", domain.ErrInvalidURL)
	}
	if c.Server.ReadHeaderTimeout < 0 {
		return fmt.Errorf("server.read_header_timeout: %w", domain.ErrInvalidDuration)
	}
	if err := c.Server.TLS.Validate(); err != nil {
		return fmt.Errorf("server.tls: %w", err)
	}
	if err := c.Datastore.URL.Validate(); err != nil {
		return fmt.Errorf("datastore.url: %w", err)
	}
	if err := c.DNS.Validate(); err != nil {
		return fmt.Errorf("dns: %w", err)
	}
	if err := c.Identity.Validate(); err != nil {
		return fmt.Errorf("identity: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: %w: %s", domain.ErrInvalidType, c.Log.Format)
	}
	return nil
}

func (d *DNSConfig) Validate() error {
	switch d.Provider {
	case DNSProviderCloudflare, DNSProviderAliyun, DNSProviderTencent:
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, d.Provider)
	}
	if d.ZoneID == "" {
		return domain.RequiredField("zone_id")
	}
	for key, ref := range d.Credentials {
		if err := ref.Validate(); err != nil {
			return fmt.Errorf("credentials[%s]: %w", key, err)
		}
	}
	return nil
}

func (i *IdentityConfig) Validate() error {
	switch i.Provider {
	case IdentityProviderKeycloak:
		if i.Keycloak.BaseURL == "" {
			return domain.RequiredField("keycloak.base_url")
		}
		if i.Keycloak.Realm == "" {
			return domain.RequiredField("keycloak.realm")
		}
	case IdentityProviderStatic:
		for idx, s := range i.Static {
			if err := s.Token.Validate(); err != nil {
				return fmt.Errorf("static[%d].token: %w", idx, err)
			}
			if s.ID == "" {
				return fmt.Errorf("static[%d]: %w", idx, domain.RequiredField("id"))
			}
		}
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedIdentity, i.Provider)
	}
	return nil
}
