package config

import (
	"github.com/kbukum/audiobench/errors"
	"github.com/kbukum/audiobench/logger"
	"github.com/kbukum/audiobench/validation"
)

// Config is the top-level audiobench configuration.
type Config struct {
	Logging     logger.Config     `mapstructure:"logging"`
	Paths       PathsConfig       `mapstructure:",squash"`
	Credentials CredentialsConfig `mapstructure:",squash"`
}

// PathsConfig holds the input and output directories for a run.
type PathsConfig struct {
	// SampleDir is the directory expected to contain the audio sample.
	SampleDir string `mapstructure:"audiobench_sample_dir" validate:"required"`
	// ResultsDir is the destination for result records.
	ResultsDir string `mapstructure:"audiobench_results_dir" validate:"required"`
}

// CredentialsConfig holds API credentials sourced from the environment.
type CredentialsConfig struct {
	OpenAIAPIKey     string `mapstructure:"openai_api_key"`
	MistralAPIKey    string `mapstructure:"mistral_api_key"`
	HuggingFaceToken string `mapstructure:"huggingface_token"`
}

// ApplyDefaults fills in default values for unset fields.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	if c.Paths.SampleDir == "" {
		c.Paths.SampleDir = "audio_sample"
	}
	if c.Paths.ResultsDir == "" {
		c.Paths.ResultsDir = "test_results"
	}
}

// Validate checks the configuration shape. Credentials are validated
// per-provider via CredentialFor, not here, so that a run only requires
// the keys of the backends it actually uses.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig(err.Error())
	}
	return validation.Validate(c.Paths)
}

// envKeyByProvider maps provider names to the environment variable
// that carries their credential.
var envKeyByProvider = map[string]string{
	"openai":   "OPENAI_API_KEY",
	"voxtral":  "MISTRAL_API_KEY",
	"pyannote": "HUGGINGFACE_TOKEN",
}

// CredentialFor returns the credential for the named provider, or a
// MissingCredential error when the provider requires one and it is unset.
// Providers without an entry (local models) need no credential.
func (c *Config) CredentialFor(provider string) (string, error) {
	key, required := envKeyByProvider[provider]
	if !required {
		return "", nil
	}

	var value string
	switch provider {
	case "openai":
		value = c.Credentials.OpenAIAPIKey
	case "voxtral":
		value = c.Credentials.MistralAPIKey
	case "pyannote":
		value = c.Credentials.HuggingFaceToken
	}

	if value == "" {
		return "", errors.MissingCredential(provider, key)
	}
	return value, nil
}
