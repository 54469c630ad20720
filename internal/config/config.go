package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/zhubert/dirshell/internal/errors"
	"gopkg.in/yaml.v3"
)

const configDirName = ".dirshell"
const configFileName = "config.yaml"

// Prefixes are prepended to each rendered result line.
type Prefixes struct {
	Success string `yaml:"success"`
	Notice  string `yaml:"notice"`
	Error   string `yaml:"error"`
}

// Config holds the shell configuration
type Config struct {
	Prompt   string   `yaml:"prompt"`
	Farewell string   `yaml:"farewell"`
	Prefixes Prefixes `yaml:"prefixes"`

	// Color enables styled output. It only takes effect when stdout is a terminal.
	Color bool `yaml:"color"`
	// ForcePrompt prints the prompt even when stdin is not a terminal.
	ForcePrompt bool `yaml:"force_prompt"`

	LogPath string `yaml:"log_path,omitempty"`

	filePath string
}

// Defaults returns a Config matching the classic transcript format.
func Defaults() *Config {
	return &Config{
		Prompt:   "> ",
		Farewell: "Have a great day!",
		Prefixes: Prefixes{
			Success: "SUCC: ",
			Notice:  "Something Bad Happened! ",
			Error:   "ERR: ",
		},
		Color: true,
	}
}

// DefaultPath returns ~/.dirshell/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the config at path and overlays it on Defaults. An empty
// path means DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Defaults(), nil
		}
		path = p
	}

	cfg := Defaults()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the loaded values can render a transcript.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Prompt, "\n\r") {
		return errors.ConfigInvalid("prompt must be a single line")
	}
	if strings.ContainsAny(c.Farewell, "\n\r") {
		return errors.ConfigInvalid("farewell must be a single line")
	}
	p := c.Prefixes
	if p.Success != "" && p.Success == p.Error {
		return errors.ConfigInvalid("success and error prefixes must differ")
	}
	if p.Notice != "" && (p.Notice == p.Success || p.Notice == p.Error) {
		return errors.ConfigInvalid("notice prefix must differ from success and error prefixes")
	}
	return nil
}

// FilePath returns the path the config was loaded from.
func (c *Config) FilePath() string {
	return c.filePath
}
