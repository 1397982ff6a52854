package httpapi

import (
	"crypto/tls"
	"fmt"

	"golang.org/x/crypto/acme"
	"golang.org/x/crypto/acme/autocert"

	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

// tlsConfig returns nil when TLS is not configured.
func tlsConfig(cfg entity.TLSConfig) (*tls.Config, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("loading certificate: %w", err)
		}
		return &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}, nil
	}

	m := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(cfg.ACME.Hosts...),
		Cache:      autocert.DirCache(cfg.ACME.CacheDir),
		Email:      cfg.ACME.Email,
	}
	if cfg.ACME.DirectoryURL != "" {
		m.Client = &acme.Client{DirectoryURL: cfg.ACME.DirectoryURL}
	}
	tc := m.TLSConfig()
	tc.MinVersion = tls.VersionTLS12
	return tc, nil
}
