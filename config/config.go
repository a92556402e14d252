// Package config loads the tool configuration from a yaml or json file with
// RENTGEN_-prefixed environment overrides. A .env file next to the working
// directory is honored, matching how the store credential is usually
// provided.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Store    StoreConfig    `json:"store"`
	Generate GenerateConfig `json:"generate"`
}

// Load reads the configuration file and applies environment overrides. The
// file may be absent when every required value arrives via the environment.
func Load(path string) (*Config, error) {
	// Optional .env, as the credential is commonly kept there.
	_ = godotenv.Load()

	k := koanf.New(".")
	if _, err := os.Stat(path); err == nil {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider("RENTGEN_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "rentgen_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Generate.SetDefaults()
	if err := cfg.Store.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Generate.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
