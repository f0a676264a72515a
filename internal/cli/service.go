package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/habtools/habctl/internal/format"
)

// ServiceConfigHandler handles the service configuration command
type ServiceConfigHandler struct {
	app *App
}

// NewServiceConfigHandler creates a new service config command handler
func NewServiceConfigHandler(app *App) *ServiceConfigHandler {
	return &ServiceConfigHandler{app: app}
}

// Execute fetches a service configuration record and renders it with
// humanized key labels.
func (h *ServiceConfigHandler) Execute(cmd *cobra.Command, args []string) error {
	serviceID := args[0]

	cfg, err := h.app.loadConfig(cmd)
	if err != nil {
		return err
	}

	client := h.app.newClient(cfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	serviceCfg, err := client.GetServiceConfig(ctx, serviceID)
	if err != nil {
		return h.app.presentFailure(err)
	}

	keys := make([]string, 0, len(serviceCfg))
	for key := range serviceCfg {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprint(h.app.Out, format.Render(format.FormatServiceConfig(serviceCfg, keys)))
	return nil
}

// SitemapsHandler handles the sitemap listing command
type SitemapsHandler struct {
	app *App
}

// NewSitemapsHandler creates a new sitemaps command handler
func NewSitemapsHandler(app *App) *SitemapsHandler {
	return &SitemapsHandler{app: app}
}

// Execute lists the sitemaps the server exposes.
func (h *SitemapsHandler) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := h.app.loadConfig(cmd)
	if err != nil {
		return err
	}

	client := h.app.newClient(cfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	sitemaps, err := client.ListSitemaps(ctx)
	if err != nil {
		return h.app.presentFailure(err)
	}

	for _, sitemap := range sitemaps {
		link := sitemap.Homepage.Link
		if link == "" {
			link = sitemap.Link
		}
		fmt.Fprintln(h.app.Out, format.RenderRow(sitemap.Name, link))
	}
	return nil
}
