package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	APIKey  string `yaml:"api_key,omitempty"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`

	// MaxAttempts bounds retries of the completion call. 1 means no retry.
	MaxAttempts int `yaml:"max_attempts,omitempty"`

	Templates TemplatesConfig `yaml:"templates"`
	Identity  IdentityConfig  `yaml:"identity"`

	LogFile string `yaml:"log_file,omitempty"`
}

// TemplatesConfig locates the .docx templates the assemblers draw styles from.
type TemplatesConfig struct {
	Dir            string `yaml:"dir"`
	General        string `yaml:"general"`
	PromissoryNote string `yaml:"promissory_note"`
}

type IdentityConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:       "gpt-5",
		MaxAttempts: 1,
		Templates: TemplatesConfig{
			Dir:            "templates",
			General:        "template_maestro.docx",
			PromissoryNote: "template_pagare.docx",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "olea"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// applyEnv lets a .env file or the environment override file values.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("OLEA_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("OLEA_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("OLEA_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("OLEA_IDENTITY_URL"); v != "" {
		c.Identity.BaseURL = v
	}
	if v := os.Getenv("OLEA_IDENTITY_KEY"); v != "" {
		c.Identity.APIKey = v
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Model == "" {
		c.Model = d.Model
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.Templates.Dir == "" {
		c.Templates.Dir = d.Templates.Dir
	}
	if c.Templates.General == "" {
		c.Templates.General = d.Templates.General
	}
	if c.Templates.PromissoryNote == "" {
		c.Templates.PromissoryNote = d.Templates.PromissoryNote
	}
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// TemplatePaths resolves the template name -> file mapping the assemblers use.
func (c *Config) TemplatePaths() map[string]string {
	return map[string]string{
		"general":         filepath.Join(c.Templates.Dir, c.Templates.General),
		"promissory_note": filepath.Join(c.Templates.Dir, c.Templates.PromissoryNote),
	}
}

// LogPath returns the log file location, defaulting to the config dir.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	dir, err := ConfigDir()
	if err != nil {
		return "olea.log"
	}
	return filepath.Join(dir, "olea.log")
}
