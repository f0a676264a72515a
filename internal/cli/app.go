package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/habtools/habctl/internal/config"
	"github.com/habtools/habctl/internal/errors"
	"github.com/habtools/habctl/internal/prompt"
	"github.com/habtools/habctl/internal/rest"
)

// App carries the long-lived collaborators every command handler shares:
// the logger built at startup, the viper store backing the config file,
// and the interactive prompter. Constructed once in main, torn down with
// the process.
type App struct {
	Logger   zerolog.Logger
	Viper    *viper.Viper
	Prompter prompt.Prompter
	Out      io.Writer

	// HTTPClient is swapped out in tests
	HTTPClient rest.HTTPClientProvider
}

// NewApp wires an App for interactive use.
func NewApp(logger zerolog.Logger, v *viper.Viper) *App {
	return &App{
		Logger:     logger,
		Viper:      v,
		Prompter:   prompt.NewSurveyPrompter(true),
		Out:        os.Stdout,
		HTTPClient: http.DefaultClient,
	}
}

// loadConfig resolves the effective configuration for a command and
// enforces the rest.enabled gate.
func (a *App) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.Viper, cmd.Flags())
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load configuration")
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		a.Logger.Error().Err(err).Msg("configuration validation failed")
		return nil, err
	}

	if !cfg.RESTEnabled {
		return nil, errors.New(errors.ErrorTypeConfig, "REST API access is disabled").
			WithContext("config_type", "rest").
			WithContext("suggestion", "set rest.enabled: true in ~/.config/habctl/config.yaml")
	}

	return cfg, nil
}

// newClient builds the REST client for a loaded configuration.
func (a *App) newClient(cfg *config.Config) *rest.Client {
	return rest.NewClient(a.Logger, cfg, a.HTTPClient)
}

// notice prints an informational, non-blocking message. Used for the
// normal not-found and no-selection outcomes that are not failures.
func (a *App) notice(msg string) {
	fmt.Fprintln(a.Out, msg)
}

// presentFailure shows a failed server call to the user and offers the
// fixed recovery actions. A dismissed or unrecognized choice performs no
// action; the original error is swallowed because it has already been
// presented.
func (a *App) presentFailure(err error) error {
	message := errors.UserMessage(err)
	a.Logger.Debug().Fields(errors.DebugInfo(err)).Msg("presenting failure")

	action, promptErr := a.Prompter.PickRecovery(message)
	if promptErr != nil {
		return promptErr
	}

	switch action {
	case errors.ActionSetHost:
		host, askErr := a.Prompter.AskHost(a.Viper.GetString("host"))
		if askErr != nil {
			return askErr
		}
		if host == "" {
			return nil
		}
		return config.SetHost(a.Viper, host)
	case errors.ActionDisableREST:
		return config.DisableREST(a.Viper)
	default:
		return nil
	}
}
