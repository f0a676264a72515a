package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/habtools/habctl/internal/browser"
	"github.com/habtools/habctl/internal/openapi"
	"github.com/habtools/habctl/internal/rest"
)

// defaultUIPath is the Basic UI entry point opened when no path is given.
const defaultUIPath = "/basicui/app"

// OpenHandler handles the browser-open command
type OpenHandler struct {
	app      *App
	launcher *browser.Launcher
}

// NewOpenHandler creates a new open command handler
func NewOpenHandler(app *App) *OpenHandler {
	return &OpenHandler{
		app:      app,
		launcher: browser.NewLauncher(app.Logger),
	}
}

// Execute composes the target URL and opens it in the browser. The path
// may be relative to the server base or a full URL; an optional --sitemap
// value fills a %s placeholder in the path.
func (h *OpenHandler) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := h.app.loadConfig(cmd)
	if err != nil {
		return err
	}

	path := defaultUIPath
	if len(args) > 0 {
		path = args[0]
	}

	sitemap, err := cmd.Flags().GetString("sitemap")
	if err != nil {
		return err
	}

	base := rest.ResolveBaseURL(cfg)

	var target string
	if sitemap != "" {
		target = rest.BuildURL(base, path, sitemap)
	} else {
		target = rest.BuildURL(base, path)
	}

	h.app.Logger.Info().Str("url", target).Msg("opening browser")
	return h.launcher.OpenURL(target)
}

// DocsHandler handles the REST documentation command
type DocsHandler struct {
	app *App
}

// NewDocsHandler creates a new docs command handler
func NewDocsHandler(app *App) *DocsHandler {
	return &DocsHandler{app: app}
}

// Execute fetches the server's OpenAPI document and renders an endpoint
// index, optionally filtered by path.
func (h *DocsHandler) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := h.app.loadConfig(cmd)
	if err != nil {
		return err
	}

	client := h.app.newClient(cfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	raw, err := client.GetSpec(ctx)
	if err != nil {
		return h.app.presentFailure(err)
	}

	spec, err := openapi.Parse(raw)
	if err != nil {
		return err
	}

	filter := "*"
	if len(args) > 0 {
		filter = args[0]
	}

	fmt.Fprintln(h.app.Out, spec.RenderIndex(spec.Endpoints(filter)))
	return nil
}
