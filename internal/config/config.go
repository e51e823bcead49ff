package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName         = "tabjobs"
	ConfigFileName  = "config.json"
	ProxiesFileName = "proxies.txt"
	RunsFileName    = "runs.json"
)

// Environment variables read at startup. The credential is the only required
// one; everything else has a documented default.
const (
	EnvAPIKey   = "JOB_API_KEY"
	EnvBaseURL  = "JOB_API_BASE_URL"
	EnvKeywords = "DEFAULT_SEARCH_KEYWORDS"
	EnvLocation = "DEFAULT_SEARCH_LOCATION"
	EnvTarget   = "DEFAULT_TARGET_JOBS"
	EnvMaxPages = "DEFAULT_MAX_PAGES"
	EnvProxies  = "JOB_PROXIES"
)

var ErrMissingCredential = errors.New("missing " + EnvAPIKey + " environment variable")

// Config contains the API credential and default search settings. The
// credential only ever comes from the environment; search defaults may be
// overridden by the config file.
type Config struct {
	APIKey   string `json:"-"`
	BaseURL  string `json:"base_url"`
	Keywords string `json:"default_keywords"`
	Location string `json:"default_location"`
	Target   int    `json:"default_target_jobs"`
	MaxPages int    `json:"default_max_pages"`
}

func DefaultConfig() Config {
	return Config{
		APIKey:   strings.TrimSpace(os.Getenv(EnvAPIKey)),
		BaseURL:  envString(EnvBaseURL, "https://jooble.org"),
		Keywords: envString(EnvKeywords, "tableau"),
		Location: envString(EnvLocation, "us"),
		Target:   envInt(EnvTarget, 120),
		MaxPages: envInt(EnvMaxPages, 4),
	}
}

// Validate checks that the required credential is present. It runs once,
// before any network activity.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingCredential
	}
	return nil
}

// MaskedKey returns the first four characters of the credential for use in
// diagnostics, never the full key.
func (c Config) MaskedKey() string {
	key := strings.TrimSpace(c.APIKey)
	if key == "" {
		return "not set"
	}
	if len(key) <= 4 {
		return key + "..."
	}
	return key[:4] + "..."
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func ProxiesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProxiesFileName), nil
}

func RunsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, RunsFileName), nil
}

// Load reads a .env file if one exists, then builds the config from the
// environment and overlays the optional config file.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Init writes default config.json and proxies.txt if they don't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	proxiesPath := filepath.Join(dir, ProxiesFileName)
	if _, err := os.Stat(proxiesPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(proxiesPath, []byte(""), 0o644); err != nil {
			return created, err
		}
		created = append(created, proxiesPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadProxies resolves proxies from the flag value, the environment, or the
// proxies file, in that order.
func LoadProxies(flagValue string) ([]string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return splitCSV(flagValue), nil
	}

	if env := strings.TrimSpace(os.Getenv(EnvProxies)); env != "" {
		return splitCSV(env), nil
	}

	path, err := ProxiesPath()
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

	var proxies []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		proxies = append(proxies, line)
	}
	return proxies, nil
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
