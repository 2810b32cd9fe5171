package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/audiobench/config"
	"github.com/kbukum/audiobench/diarization"
	"github.com/kbukum/audiobench/diarization/pyannote"
	"github.com/kbukum/audiobench/errors"
	"github.com/kbukum/audiobench/harness"
	"github.com/kbukum/audiobench/logger"
	"github.com/kbukum/audiobench/results"
	"github.com/kbukum/audiobench/transcription"
	"github.com/kbukum/audiobench/transcription/openai"
	"github.com/kbukum/audiobench/transcription/parakeet"
	"github.com/kbukum/audiobench/transcription/voxtral"
	"github.com/kbukum/audiobench/version"
)

// Exit codes by error class.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitConfig  = 2
	ExitInput   = 3
	ExitBackend = 4
)

// App describes one benchmark command: which transcription backend to
// run and, optionally, which diarization backend to pair it with.
type App struct {
	// Name is the command name, used for config lookup and logging.
	Name string
	// Method names the backend combination in result records. Defaults
	// to the provider names joined with an underscore.
	Method string
	// Transcriber is the transcription provider name.
	Transcriber string
	// Diarizer is the diarization provider name, empty to skip.
	Diarizer string
}

// Main runs the app and exits the process with a class-specific code.
func (a App) Main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		logger.WithComponent(a.Name).WithError(err).Error("run failed")
		stop()
		os.Exit(exitCode(err))
	}
}

// Run executes one benchmark run end to end.
func (a App) Run(ctx context.Context) error {
	cfg, err := config.Load(a.Name)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging)

	log := logger.WithComponent(a.Name)
	log.Info("starting audiobench", map[string]any{
		"version": version.Get().String(),
		"method":  a.method(),
	})

	transcriber, err := a.buildTranscriber(cfg)
	if err != nil {
		return err
	}
	diarizer, err := a.buildDiarizer(cfg)
	if err != nil {
		return err
	}

	store, err := results.NewLocalStore(cfg.Paths.ResultsDir)
	if err != nil {
		return err
	}

	runner, err := harness.NewRunner(harness.Options{
		Method:      a.method(),
		SampleDir:   cfg.Paths.SampleDir,
		Transcriber: transcriber,
		Diarizer:    diarizer,
		Store:       store,
		Log:         log,
	})
	if err != nil {
		return err
	}

	_, _, err = runner.Run(ctx)
	return err
}

// method names the backend combination for the result record.
func (a App) method() string {
	if a.Method != "" {
		return a.Method
	}
	if a.Diarizer == "" {
		return a.Transcriber
	}
	return a.Transcriber + "_" + a.Diarizer
}

func (a App) buildTranscriber(cfg *config.Config) (transcription.Provider, error) {
	registry := transcription.NewRegistry()
	registry.RegisterFactory(openai.ProviderName, openai.Factory())
	registry.RegisterFactory(voxtral.ProviderName, voxtral.Factory())
	registry.RegisterFactory(parakeet.ProviderName, parakeet.Factory())

	providerCfg, err := credentialConfig(cfg, a.Transcriber)
	if err != nil {
		return nil, err
	}
	return registry.Create(a.Transcriber, providerCfg)
}

func (a App) buildDiarizer(cfg *config.Config) (diarization.Provider, error) {
	if a.Diarizer == "" {
		return nil, nil
	}

	registry := diarization.NewRegistry()
	registry.RegisterFactory(pyannote.ProviderName, pyannote.Factory())

	providerCfg, err := credentialConfig(cfg, a.Diarizer)
	if err != nil {
		return nil, err
	}
	return registry.Create(a.Diarizer, providerCfg)
}

// credentialConfig resolves the provider's credential before anything
// else happens, so a missing key fails the run without a network call or
// subprocess spawn.
func credentialConfig(cfg *config.Config, providerName string) (map[string]any, error) {
	credential, err := cfg.CredentialFor(providerName)
	if err != nil {
		return nil, err
	}

	providerCfg := map[string]any{}
	switch providerName {
	case openai.ProviderName, voxtral.ProviderName:
		providerCfg["api_key"] = credential
	case pyannote.ProviderName:
		providerCfg["huggingface_token"] = credential
	}
	return providerCfg, nil
}

// exitCode maps the error taxonomy to process exit codes.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsConfig(err):
		return ExitConfig
	case errors.IsInput(err):
		return ExitInput
	case errors.IsBackend(err):
		return ExitBackend
	default:
		return ExitFailure
	}
}
