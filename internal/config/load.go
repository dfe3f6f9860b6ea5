package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is built once at startup and handed to every component that needs
// it. Nothing below cmd/ reads viper or the environment directly.
type Config struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Language    string
	Strategy    string
	Verbose     bool
	LogFile     string
	MetricsAddr string

	Store   StoreConfig
	Profile ProfileConfig

	// ProbeModels are tried in order by `models --probe`.
	ProbeModels []string
}

// StoreConfig selects where judgments are appended.
type StoreConfig struct {
	Type string // "jsonl", "sqlite" or "postgres"
	Path string // file path, or DSN for postgres
}

// ProfileConfig holds profiler defaults.
type ProfileConfig struct {
	Sizes []int
}

// providerKeyEnv maps a provider to the conventional variable holding its key.
var providerKeyEnv = map[string]string{
	"gemini":     "GEMINI_API_KEY",
	"openai":     "OPENAI_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("provider", "gemini")
	v.SetDefault("model", "gemini-2.5-flash")
	v.SetDefault("base_url", "")
	v.SetDefault("language", "python")
	v.SetDefault("strategy", "standard")
	v.SetDefault("verbose", false)
	v.SetDefault("log_file", "")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("store.type", "jsonl")
	v.SetDefault("store.path", "")
	v.SetDefault("profile.sizes", []int{10, 100, 500, 1000})
	v.SetDefault("probe_models", []string{
		"gemini-2.0-flash",
		"gemini-2.0-flash-001",
		"gemini-2.5-flash",
		"gemini-1.5-flash-latest",
	})
}

// BindFlags binds the root command's persistent flags to their config keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"verbose":  "verbose",
		"model":    "model",
		"provider": "provider",
		"language": "language",
		"log-file": "log_file",
	}
	for flag, key := range bindings {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// Load reads .env, the optional config file and AUDITOR_* environment
// variables into v and returns the validated configuration.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("auditor")
	}

	v.SetEnvPrefix("AUDITOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	sizes, err := intSlice(v.Get("profile.sizes"))
	if err != nil {
		return nil, fmt.Errorf("invalid profile.sizes: %w", err)
	}

	cfg := &Config{
		Provider:    strings.ToLower(v.GetString("provider")),
		Model:       v.GetString("model"),
		APIKey:      v.GetString("api_key"),
		BaseURL:     v.GetString("base_url"),
		Language:    strings.ToLower(v.GetString("language")),
		Strategy:    strings.ToLower(v.GetString("strategy")),
		Verbose:     v.GetBool("verbose"),
		LogFile:     v.GetString("log_file"),
		MetricsAddr: v.GetString("metrics_addr"),
		Store: StoreConfig{
			Type: strings.ToLower(v.GetString("store.type")),
			Path: v.GetString("store.path"),
		},
		Profile:     ProfileConfig{Sizes: sizes},
		ProbeModels: v.GetStringSlice("probe_models"),
	}

	if cfg.APIKey == "" {
		if env, ok := providerKeyEnv[cfg.Provider]; ok {
			cfg.APIKey = os.Getenv(env)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// intSlice accepts a list from a config file or a comma separated string
// from the environment.
func intSlice(raw any) ([]int, error) {
	if s, ok := raw.(string); ok {
		var out []int
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	}
	return cast.ToIntSliceE(raw)
}
