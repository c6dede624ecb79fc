package appConfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"labclone/internal/ext"
)

// TokenEnvVariableName is consulted when no token is configured
// explicitly.
const TokenEnvVariableName = "GITLAB_TOKEN"

const DefaultSSHKeyPath = "~/.ssh/id_rsa_gitlab"

// DefaultConfigFilePath is consulted when no config file is named on
// the command line.
const DefaultConfigFilePath = "~/.labclone.yaml"

// AppConfig is the full configuration of one run. Every field can
// come from the optional YAML config file; flags overlay file values.
type AppConfig struct {
	Directory          string `yaml:"directory"`          // Clone destination root
	URL                string `yaml:"url"`                // GitLab base URL, e.g. https://gitlab.example.com
	APIToken           string `yaml:"apiToken"`           // Listing API token; falls back to $GITLAB_TOKEN
	CloneMethod        string `yaml:"cloneMethod"`        // https or ssh
	SSHKeyPath         string `yaml:"sshKeyPath"`         // Private key used for ssh clones
	Workers            int    `yaml:"workers"`            // Max concurrent clones, 0 for the default
	RateLimitPerSecond int    `yaml:"rateLimitPerSecond"` // Clone hand-off rate, 0 for no limit
}

// Load reads the named config file. The file must exist; silently
// ignoring a mistyped path would discard the configuration the user
// asked for.
func Load(configFilePath string) (*AppConfig, error) {
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	return parse(data)
}

// LoadDefault reads the implicit config location. A missing file is
// not an error here; flags may carry the whole configuration.
func LoadDefault() (*AppConfig, error) {
	data, err := os.ReadFile(ext.ExpandTilde(DefaultConfigFilePath))
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*AppConfig, error) {
	config := &AppConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config file: %w", err)
	}
	return config, nil
}

// Overlay applies non-zero flag values on top of file values.
func (config *AppConfig) Overlay(flags AppConfig) {
	config.Directory = ext.DefaultValue(flags.Directory, config.Directory)
	config.URL = ext.DefaultValue(flags.URL, config.URL)
	config.APIToken = ext.DefaultValue(flags.APIToken, config.APIToken)
	config.CloneMethod = ext.DefaultValue(flags.CloneMethod, config.CloneMethod)
	config.SSHKeyPath = ext.DefaultValue(flags.SSHKeyPath, config.SSHKeyPath)
	config.Workers = ext.DefaultValue(flags.Workers, config.Workers)
	config.RateLimitPerSecond = ext.DefaultValue(flags.RateLimitPerSecond, config.RateLimitPerSecond)
}

// ResolveToken returns the configured token or the environment
// fallback; an empty result means anonymous listing.
func (config *AppConfig) ResolveToken() string {
	if config.APIToken != "" {
		return config.APIToken
	}
	return os.Getenv(TokenEnvVariableName)
}

func (config *AppConfig) Validate() error {
	if config.Directory == "" {
		return fmt.Errorf("no clone directory configured")
	}
	if config.URL == "" {
		return fmt.Errorf("no GitLab URL configured")
	}
	switch config.CloneMethod {
	case "https", "ssh":
	default:
		return fmt.Errorf("unknown clone method %q, expected https or ssh", config.CloneMethod)
	}
	return nil
}
