package dns

import (
	"fmt"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
	"github.com/lite-lake/subdomaind/internal/domain/valueobject"
)

// EnvLookup resolves environment-backed credentials; os.LookupEnv in
// production.
type EnvLookup func(string) (string, bool)

type CreatorFunc func(cfg *entity.DNSConfig, lookup EnvLookup) (Provider, error)

type Factory struct {
	creators map[string]CreatorFunc
}

func NewFactory() *Factory {
	return &Factory{
		creators: map[string]CreatorFunc{
			entity.DNSProviderCloudflare: createCloudflare,
			entity.DNSProviderAliyun:     createAliyun,
			entity.DNSProviderTencent:    createTencent,
		},
	}
}

func (f *Factory) Create(cfg *entity.DNSConfig, lookup EnvLookup) (Provider, error) {
	creator, ok := f.creators[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, cfg.Provider)
	}
	return creator(cfg, lookup)
}

func resolveCredential(creds map[string]valueobject.SecretRef, key string, lookup EnvLookup) (string, error) {
	ref, ok := creds[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingCredential, key)
	}
	return ref.Resolve(lookup)
}

func createCloudflare(cfg *entity.DNSConfig, lookup EnvLookup) (Provider, error) {
	apiToken, err := resolveCredential(cfg.Credentials, "api_token", lookup)
	if err != nil {
		return nil, fmt.Errorf("resolve api_token: %w", err)
	}
	return NewCloudflareProvider(apiToken), nil
}

func createAliyun(cfg *entity.DNSConfig, lookup EnvLookup) (Provider, error) {
	accessKeyID, err := resolveCredential(cfg.Credentials, "access_key_id", lookup)
	if err != nil {
		return nil, fmt.Errorf("resolve access_key_id: %w", err)
	}
	accessKeySecret, err := resolveCredential(cfg.Credentials, "access_key_secret", lookup)
	if err != nil {
		return nil, fmt.Errorf("resolve access_key_secret: %w", err)
	}
	return NewAliyunProvider(accessKeyID, accessKeySecret)
}

func createTencent(cfg *entity.DNSConfig, lookup EnvLookup) (Provider, error) {
	secretID, err := resolveCredential(cfg.Credentials, "secret_id", lookup)
	if err != nil {
		return nil, fmt.Errorf("resolve secret_id: %w", err)
	}
	secretKey, err := resolveCredential(cfg.Credentials, "secret_key", lookup)
	if err != nil {
		return nil, fmt.Errorf("resolve secret_key: %w", err)
	}
	return NewTencentProvider(secretID, secretKey)
}
