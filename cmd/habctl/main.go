package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/habtools/habctl/internal/cli"
	"github.com/habtools/habctl/internal/config"
	"github.com/habtools/habctl/internal/logger"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		debug   bool
	)

	rootCmd := &cobra.Command{
		Use:   "habctl",
		Short: "Command-line companion for an openHAB server",
		Long: `habctl talks to an openHAB server over its REST API: look up item
states, inspect service configuration, browse sitemaps and REST docs, and
open the server UI in a browser.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("host", "localhost", "Server host, optionally with scheme (e.g. https://hab.local)")
	rootCmd.PersistentFlags().Int("port", 8080, "Server port (omitted from URLs when 80)")
	rootCmd.PersistentFlags().String("username", "", "Username embedded in the server URL")
	rootCmd.PersistentFlags().String("password", "", "Password embedded in the server URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug output with caller information")

	v, err := config.NewViper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(logger.SetupFromFlags(false, false), v)

	// The logger is constructed once and handed down; the level is
	// finalized here because flags are only parsed per command
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		app.Logger = logger.SetupFromFlags(verbose, debug)
	}

	itemCmd := &cobra.Command{
		Use:   "item [name]",
		Short: "Show the state of a single item",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cli.NewItemHandler(app).Execute,
	}

	itemsCmd := &cobra.Command{
		Use:   "items",
		Short: "List all items with their states",
		Args:  cobra.NoArgs,
		RunE:  cli.NewItemsHandler(app).Execute,
	}

	serviceCmd := &cobra.Command{
		Use:   "config <serviceID>",
		Short: "Show the configuration of a managed service",
		Args:  cobra.ExactArgs(1),
		RunE:  cli.NewServiceConfigHandler(app).Execute,
	}

	sitemapsCmd := &cobra.Command{
		Use:   "sitemaps",
		Short: "List the sitemaps the server exposes",
		Args:  cobra.NoArgs,
		RunE:  cli.NewSitemapsHandler(app).Execute,
	}

	openCmd := &cobra.Command{
		Use:   "open [path]",
		Short: "Open the server UI (or a specific path) in the browser",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cli.NewOpenHandler(app).Execute,
	}
	openCmd.Flags().String("sitemap", "", "Sitemap name substituted into a %s placeholder in the path")

	docsCmd := &cobra.Command{
		Use:   "docs [path-filter]",
		Short: "Show the server's REST endpoint index",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cli.NewDocsHandler(app).Execute,
	}

	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve item lookups as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE:  cli.NewMCPHandler(app, version).Execute,
	}

	rootCmd.AddCommand(itemCmd, itemsCmd, serviceCmd, sitemapsCmd, openCmd, docsCmd, mcpCmd)

	return rootCmd
}
