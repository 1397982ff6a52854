package valueobject

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lite-lake/subdomaind/internal/domain"
)

// SecretRef is a credential given inline or read from the environment.
// In YAML it is either a bare string or a mapping with `plain` or `env`.
type SecretRef struct {
	Plain string `yaml:"plain,omitempty"`
	Env   string `yaml:"env,omitempty"`
}

func NewSecretRefPlain(plain string) *SecretRef {
	return &SecretRef{Plain: plain}
}

func NewSecretRefEnv(name string) *SecretRef {
	return &SecretRef{Env: name}
}

func (s *SecretRef) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var plain string
	if err := unmarshal(&plain); err == nil {
		s.Plain = plain
		return nil
	}

	type alias SecretRef
	var ref alias
	if err := unmarshal(&ref); err != nil {
		return err
	}
	s.Plain = ref.Plain
	s.Env = ref.Env
	return nil
}

func (s SecretRef) MarshalYAML() (interface{}, error) {
	if s.Env != "" {
		return map[string]string{"env": s.Env}, nil
	}
	return s.Plain, nil
}

// Resolve returns the credential value. lookup defaults to os.LookupEnv.
func (s *SecretRef) Resolve(lookup func(string) (string, bool)) (string, error) {
	if s.Env != "" {
		if lookup == nil {
			lookup = os.LookupEnv
		}
		val, ok := lookup(s.Env)
		if !ok || val == "" {
			return "", fmt.Errorf("%w: %s", domain.ErrMissingEnv, s.Env)
		}
		return val, nil
	}
	if s.Plain == "" {
		return "", domain.ErrEmptyValue
	}
	return s.Plain, nil
}

func (s *SecretRef) Validate() error {
	if s.Plain == "" && s.Env == "" {
		return domain.ErrEmptyValue
	}
	return nil
}

func (s *SecretRef) IsZero() bool {
	return s == nil || (s.Plain == "" && s.Env == "")
}

func (s SecretRef) LogValue() slog.Value {
	if s.Env != "" {
		return slog.StringValue("env:***")
	}
	return slog.StringValue("***")
}
