package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/habtools/habctl/internal/errors"
	"github.com/habtools/habctl/internal/format"
)

// requestTimeout bounds every single-shot server call issued by a command.
const requestTimeout = 30 * time.Second

// ItemHandler handles the item lookup command
type ItemHandler struct {
	app *App
}

// NewItemHandler creates a new item command handler
func NewItemHandler(app *App) *ItemHandler {
	return &ItemHandler{app: app}
}

// Execute fetches a single item and renders its display document.
func (h *ItemHandler) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// Nothing selected is an informational outcome, not an error
		h.app.notice("No item name given")
		return nil
	}
	name := args[0]

	cfg, err := h.app.loadConfig(cmd)
	if err != nil {
		return err
	}

	client := h.app.newClient(cfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	item, err := client.GetItem(ctx, name)
	if err != nil {
		if errors.IsNotFound(err) {
			h.app.notice(errors.UserMessage(err))
			return nil
		}
		return h.app.presentFailure(err)
	}

	fmt.Fprint(h.app.Out, format.Render(format.FormatItem(item)))
	return nil
}

// ItemsHandler handles the item listing command
type ItemsHandler struct {
	app *App
}

// NewItemsHandler creates a new items command handler
func NewItemsHandler(app *App) *ItemsHandler {
	return &ItemsHandler{app: app}
}

// Execute lists every item with its current state.
func (h *ItemsHandler) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := h.app.loadConfig(cmd)
	if err != nil {
		return err
	}

	client := h.app.newClient(cfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	items, err := client.ListItems(ctx)
	if err != nil {
		return h.app.presentFailure(err)
	}

	for _, item := range items {
		fmt.Fprintln(h.app.Out, format.RenderRow(item.Name, item.State))
	}
	return nil
}
