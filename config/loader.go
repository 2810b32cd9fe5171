package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load loads the audiobench configuration for a command.
// It searches for a .env file in standard locations, binds environment
// variables, unmarshals into a Config, applies defaults, and validates.
func Load(serviceName string, opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findEnvFile(lc.FileSystem, serviceName)
	}
	if envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load .env file %s: %v\n", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	bindEnvKeys(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config for %s: %w", serviceName, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findEnvFile searches for .env files in standard locations.
func findEnvFile(fs FileSystem, serviceName string) string {
	envFiles := []string{
		fmt.Sprintf(".env.%s", serviceName),
		".env",
	}
	searchPaths := []string{
		fmt.Sprintf("./cmd/%s", serviceName),
		".",
		"..",
	}

	for _, envFile := range envFiles {
		for _, basePath := range searchPaths {
			fullPath := fmt.Sprintf("%s/%s", basePath, envFile)
			if fs.Exists(fullPath) {
				return fullPath
			}
		}
	}
	return ""
}

// bindEnvKeys copies the recognized environment variables into viper.
// Explicit Set is used instead of BindEnv so that Unmarshal sees keys that
// exist only in the environment.
func bindEnvKeys(v *viper.Viper) {
	flat := []string{
		"OPENAI_API_KEY",
		"MISTRAL_API_KEY",
		"HUGGINGFACE_TOKEN",
		"AUDIOBENCH_SAMPLE_DIR",
		"AUDIOBENCH_RESULTS_DIR",
	}
	for _, key := range flat {
		if value, ok := os.LookupEnv(key); ok {
			v.Set(strings.ToLower(key), value)
		}
	}

	nested := map[string]string{
		"logging.level":     "LOG_LEVEL",
		"logging.format":    "LOG_FORMAT",
		"logging.output":    "LOG_OUTPUT",
		"logging.no_color":  "LOG_NO_COLOR",
		"logging.timestamp": "LOG_TIMESTAMP",
	}
	for key, env := range nested {
		if value, ok := os.LookupEnv(env); ok {
			v.Set(key, value)
		}
	}
}
