package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Configuration is the server configuration, loaded from a YAML file with
// environment overrides for deployment-specific values.
type Configuration struct {
	ListenAddr string `yaml:"listenAddr"`
	OutputDir  string `yaml:"outputDir"`
	UploadDir  string `yaml:"uploadDir"`
	// SigningSecret is the base64-encoded HMAC secret for API tokens. Empty
	// disables authentication (local use).
	SigningSecret string `yaml:"signingSecret"`
	// MaxUploadMB bounds multipart uploads.
	MaxUploadMB int64 `yaml:"maxUploadMB"`
}

var (
	once    sync.Once
	cfg     Configuration
	loadErr error
)

// Load reads the configuration once per process. A missing file is not an
// error; defaults apply.
func Load(path string) (Configuration, error) {
	once.Do(func() {
		cfg = Configuration{
			ListenAddr:  ":8090",
			OutputDir:   os.TempDir(),
			UploadDir:   os.TempDir(),
			MaxUploadMB: 50,
		}

		if path != "" {
			data, err := os.ReadFile(path)
			if err == nil {
				if err := yaml.Unmarshal(data, &cfg); err != nil {
					loadErr = fmt.Errorf("unmarshal config yaml: %w", err)
					return
				}
			} else if !os.IsNotExist(err) {
				loadErr = fmt.Errorf("read config: %w", err)
				return
			}
		}

		if v := os.Getenv("INVOICEGEN_LISTEN_ADDR"); v != "" {
			cfg.ListenAddr = v
		}
		if v := os.Getenv("INVOICEGEN_SIGNING_SECRET"); v != "" {
			cfg.SigningSecret = v
		}
		if v := os.Getenv("INVOICEGEN_OUTPUT_DIR"); v != "" {
			cfg.OutputDir = v
		}
	})

	return cfg, loadErr
}
