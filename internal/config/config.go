package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/postkit/internal/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Manifest holds site-wide settings. It is handed to post extraction so
// defaults can be applied there later; today no record field reads it.
type Manifest struct {
	Title   string `mapstructure:"title" yaml:"title"`
	Author  string `mapstructure:"author" yaml:"author"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// Workers bounds concurrent extraction in batch commands.
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// Default returns the manifest used when no config file is present.
func Default() *Manifest {
	return &Manifest{BaseURL: "/", Workers: 4}
}

// IsNotFound reports whether err comes from a missing config file.
func IsNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &nf)
}

// DefaultPath returns ~/.postkit/postkit.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".postkit", "postkit.yaml"), nil
}

// Save writes the manifest to cfgFile, or to DefaultPath when cfgFile is empty.
func Save(m *Manifest, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return utils.SafeWriteFile(path, b)
}

// Load loads the manifest from file, env, and defaults.
// Precedence: env > config file > defaults. Without cfgFile, postkit.yaml in
// the working directory is tried before ~/.postkit/postkit.yaml.
func Load(cfgFile string) (*Manifest, error) {
	v := viper.New()
	v.SetEnvPrefix("POSTKIT")
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("title", d.Title)
	v.SetDefault("author", d.Author)
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("workers", d.Workers)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("postkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".postkit"))
		}
		// optional read
		if err := v.ReadInConfig(); err != nil {
			if !IsNotFound(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var m Manifest
	if err := v.Unmarshal(&m); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if m.Workers < 1 {
		m.Workers = 1
	}
	return &m, nil
}
