package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/abdidvp/bundleverify/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the working directory.
const FileName = ".bundleverify.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .bundleverify.yaml.
type YAMLLoader struct{}

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .bundleverify.yaml from dir.
// Returns DefaultConfig if the file does not exist. Any other failure is a
// *domain.ConfigError.
func (l *YAMLLoader) Load(dir string) (domain.RunConfig, error) {
	cfg, err := l.LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads the config file at path. Relative bundle paths are resolved
// against the directory holding the file. Failures are *domain.ConfigError
// wrapping the cause.
func (l *YAMLLoader) LoadFile(path string) (domain.RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RunConfig{}, &domain.ConfigError{
			Reason: fmt.Sprintf("reading %s: %v", path, err),
			Err:    err,
		}
	}

	cfg := domain.DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.RunConfig{}, &domain.ConfigError{
			Reason: fmt.Sprintf("parsing %s: %v", filepath.Base(path), err),
			Err:    err,
		}
	}

	base := filepath.Dir(path)
	cfg.ReferenceFile = resolve(base, cfg.ReferenceFile)
	for i, f := range cfg.ComparisonFiles {
		cfg.ComparisonFiles[i] = resolve(base, f)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func (l *YAMLLoader) Save(path string, cfg domain.RunConfig) error {
	var buf bytes.Buffer
	buf.WriteString("# bundleverify configuration\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
