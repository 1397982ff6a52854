package persistence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

const DefaultConfigFile = "subdomaind.yaml"

type ConfigLoader struct {
	path string
}

func NewConfigLoader(path string) *ConfigLoader {
	if path == "" {
		path = DefaultConfigFile
	}
	return &ConfigLoader{path: path}
}

func (l *ConfigLoader) Path() string {
	return l.path
}

// Load reads the config file, rejects unknown keys and fills in defaults.
// It does not validate; call Validate or LoadAndValidate for that.
func (l *ConfigLoader) Load(ctx context.Context) (*entity.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, l.path)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigReadFailed, err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigParseFailed, l.path, err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

func (l *ConfigLoader) Validate(cfg *entity.Config) error {
	if cfg == nil {
		return domain.ErrConfigNotLoaded
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigValidateFail, err)
	}
	return nil
}

func (l *ConfigLoader) LoadAndValidate(ctx context.Context) (*entity.Config, error) {
	cfg, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseConfig(data []byte) (*entity.Config, error) {
	cfg := &entity.Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}
