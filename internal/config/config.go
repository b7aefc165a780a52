// Package config loads corpusqueryd's runtime configuration from a
// layered stack: defaults, an optional YAML file, then command-line
// flags, each layer overriding the last.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config is corpusqueryd's runtime configuration.
type Config struct {
	CorpusPath string `koanf:"corpus_path"`
	LogFormat  string `koanf:"log_format"`
	ListenAddr string `koanf:"listen_addr"`
}

// Defaults returns the configuration used when no file or flag
// overrides a field.
func Defaults() Config {
	return Config{
		LogFormat:  "json",
		ListenAddr: ":8080",
	}
}

// Load builds a Config by layering, in increasing priority: built-in
// defaults, the YAML file at path (skipped if path is empty or the file
// does not exist), then any flags set on flags.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	def := Defaults()
	defaults := map[string]any{
		"corpus_path": def.CorpusPath,
		"log_format":  def.LogFormat,
		"listen_addr": def.ListenAddr,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, err
	}

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, err
			}
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
