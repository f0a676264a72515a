// Package browser hands URLs off to the operating system's default
// browser.
package browser

import (
	"os/exec"
	"runtime"

	"github.com/habtools/habctl/internal/errors"
	"github.com/rs/zerolog"
)

// Launcher opens URLs in the user's browser.
type Launcher struct {
	logger zerolog.Logger

	// run is swapped out in tests
	run func(name string, args ...string) error
}

// NewLauncher creates a browser launcher.
func NewLauncher(logger zerolog.Logger) *Launcher {
	return &Launcher{
		logger: logger.With().Str("component", "browser").Logger(),
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// OpenURL launches the default browser with the given absolute URL. The
// command is started and not waited on; the browser owns its own lifetime.
func (l *Launcher) OpenURL(url string) error {
	name, args := launchCommand(runtime.GOOS, url)

	l.logger.Debug().Str("url", url).Str("launcher", name).Msg("opening browser")

	if err := l.run(name, args...); err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "failed to open browser").
			WithContext("url", url)
	}
	return nil
}

// launchCommand picks the platform launcher for a URL.
func launchCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
