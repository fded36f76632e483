package azure

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

const (
	DefaultProfile = "default"
	DefaultOutput  = "asbuilt.docx"
	DefaultLogFile = "asbuilt.log"
)

// Config carries everything a report run needs. Subscriptions is the
// raw comma-separated list; it is split without format validation.
type Config struct {
	Subscriptions string `mapstructure:"subscriptions"`
	Output        string `mapstructure:"output"`
	LogFile       string `mapstructure:"log_file"`
	Profile       string `mapstructure:"profile"`
}

// LoadConfig reads the optional YAML config file and the environment
// (AZURE_SUBSCRIPTION_IDS, ASBUILT_OUTPUT, ASBUILT_LOG_FILE).
// Environment values override file values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("profile", DefaultProfile)
	_ = v.BindEnv("subscriptions", "AZURE_SUBSCRIPTION_IDS")
	_ = v.BindEnv("output", "ASBUILT_OUTPUT")
	_ = v.BindEnv("log_file", "ASBUILT_LOG_FILE")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// ResolveSubscriptions returns the subscription IDs for this run.
// The configured list wins; otherwise the subscription from the
// ~/.azure/config profile is used. An empty result is an error so a run
// never silently queries nothing.
func (c *Config) ResolveSubscriptions() ([]string, error) {
	if c.Subscriptions != "" {
		return strings.Split(c.Subscriptions, ","), nil
	}

	sub, err := profileSubscription(c.Profile)
	if err != nil {
		return nil, err
	}
	if sub == "" {
		return nil, fmt.Errorf("no subscription IDs configured: set AZURE_SUBSCRIPTION_IDS or a subscription in the %q profile of ~/.azure/config", c.Profile)
	}
	return []string{sub}, nil
}

func profileSubscription(profile string) (string, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".azure", "config")
	cfg, err := ini.Load(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("unable to load Azure config file: %w", err)
	}

	section, err := cfg.GetSection(profile)
	if err != nil {
		return "", nil
	}
	return section.Key("subscription").String(), nil
}

// NewCredential builds the ambient credential shared by every client.
func NewCredential() (azcore.TokenCredential, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}
	return cred, nil
}
