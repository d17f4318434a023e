package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Setup loads the configuration at path, writing the defaults there first
// when the file does not exist yet. Any problem is fatal.
func Setup(ctx context.Context, path string) *models.Config {
	logger := log.FromContext(ctx).WithField("path", path)

	cfg, created, err := LoadConfig(path)
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}

	if created {
		logger.Info("no configuration found, wrote defaults")
	}
	return cfg
}

// LoadConfig reads and validates the configuration file at path. JSON is
// assumed unless the extension is .yaml or .yml. Fields missing from the file
// keep their default values. When the file is missing the defaults are saved
// to path and created is true.
func LoadConfig(path string) (cfg *models.Config, created bool, err error) {
	cfg = models.DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err = SetConfig(path, cfg); err != nil {
			return nil, false, err
		}
		return cfg, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", path, err)
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, false, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, false, nil
}

// SetConfig saves cfg to path in the format its extension implies.
func SetConfig(path string, cfg *models.Config) error {
	var buf bytes.Buffer

	if isYAML(path) {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
		_ = enc.Close()
	} else {
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
