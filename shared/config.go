package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/tailscale/hujson"
	"os"
	"strings"
)

const (
	configVarName  = "CONFIG"                // If set, will load config from this path and not from devConfigPath
	secretsVarName = "SECRETS"               // If set, will load secrets from this path and not from devSecretsPath
	devConfigPath  = "dev/config.dev.jsonc"  // Path to config in development environment
	devSecretsPath = "dev/secrets.dev.jsonc" // Path to secrets in development environment
)

const (
	DefaultNotesUrl    = "https://rhythmic-rituals-api.vercel.app/api/notes"
	DefaultContainerId = "notes-container"
	DefaultEnvelope    = "auto"
	DefaultServicePort = 8080
	DefaultWwwDir      = "www/"
)

type Config struct {
	Secrets            Secrets `json:"-"`
	LogFile            string  `json:"log_file"`
	LogLevel           string  `json:"log_level"`
	ServicePort        uint    `json:"service_port"`
	Host               string  `json:"host"`
	WwwDir             string  `json:"www_dir"`
	CachePageTemplates bool    `json:"cache_page_templates"`
	NotesUrl           string  `json:"notes_url"`
	Envelope           string  `json:"envelope"`
	ContainerId        string  `json:"container_id"`
	FetchTimeoutSec    uint    `json:"fetch_timeout_sec"`
}

type Secrets struct {
	MetricsAuth string `json:"metrics_auth"`
}

// LoadConfig reads the JSONC config file at cfgPath, falling back to $CONFIG
// and then the development config. Secrets come from $SECRETS or the
// development secrets file; a missing secrets file leaves them empty.
func LoadConfig(cfgPath string) (*Config, error) {

	// Where are our config and secrets files?
	if len(cfgPath) == 0 {
		cfgPath = os.Getenv(configVarName)
	}
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	var config Config
	if err := deserializeFile(cfgPath, &config); err != nil {
		return nil, err
	}
	if err := deserializeFile(secretsPath, &config.Secrets); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	config.ApplyDefaults()
	return &config, nil
}

// ApplyDefaults fills in every value left empty by the config file.
func (cfg *Config) ApplyDefaults() {
	if cfg.NotesUrl == "" {
		cfg.NotesUrl = DefaultNotesUrl
	}
	if cfg.ContainerId == "" {
		cfg.ContainerId = DefaultContainerId
	}
	if cfg.Envelope == "" {
		cfg.Envelope = DefaultEnvelope
	}
	if cfg.ServicePort == 0 {
		cfg.ServicePort = DefaultServicePort
	}
	if cfg.WwwDir == "" {
		cfg.WwwDir = DefaultWwwDir
	}
	if !strings.HasSuffix(cfg.WwwDir, "/") {
		cfg.WwwDir += "/"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "Info"
	}
}

func deserializeFile[T any](fileName string, obj *T) error {
	var err error
	var cfgJson []byte
	if cfgJson, err = os.ReadFile(fileName); err != nil {
		return err
	}
	// JSONC => JSON
	if cfgJson, err = standardizeJSON(cfgJson); err != nil {
		return fmt.Errorf("failed to parse %s: %w", fileName, err)
	}
	// Parse
	if err = json.Unmarshal(cfgJson, obj); err != nil {
		return fmt.Errorf("failed to parse %s: %w", fileName, err)
	}
	return nil
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
