package rest

import (
	"context"
	"net/http"
)

// HTTPClientProvider defines the interface for the underlying HTTP client.
// Enables testing with mock HTTP clients.
type HTTPClientProvider interface {
	Do(req *http.Request) (*http.Response, error)
}

// ItemProvider defines the server lookups the presentation layers consume.
// Separating it from the concrete client keeps the formatter and the MCP
// tools testable without a live server.
type ItemProvider interface {
	// GetItem fetches a single item by name. A missing item surfaces as a
	// NotFound typed error, distinct from a transport failure.
	GetItem(ctx context.Context, name string) (*Item, error)

	// ListItems fetches every item the server knows about.
	ListItems(ctx context.Context) ([]Item, error)

	// GetServiceConfig fetches the configuration of a managed service.
	GetServiceConfig(ctx context.Context, serviceID string) (ServiceConfig, error)

	// ListSitemaps fetches the sitemaps the server exposes.
	ListSitemaps(ctx context.Context) ([]Sitemap, error)
}
