package rest_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/habtools/habctl/internal/errors"
	"github.com/habtools/habctl/internal/logger"
	"github.com/habtools/habctl/internal/rest"
	"github.com/habtools/habctl/internal/testutil"
)

func newTestClient(t *testing.T) (*rest.Client, func()) {
	t.Helper()

	server := testutil.NewHabTestServer()
	cfg := testutil.NewConfigBuilder().WithServerURL(server.URL).Build()
	log := logger.InitLogger(&logger.Config{Level: "error", Format: "json", Output: testWriter{t}})

	return rest.NewClient(log, cfg, http.DefaultClient), server.Close
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestClient_GetItem(t *testing.T) {
	client, done := newTestClient(t)
	defer done()

	item, err := client.GetItem(context.Background(), "Heating")
	if err != nil {
		t.Fatalf("GetItem() unexpected error: %v", err)
	}

	if item.Name != "Heating" || item.State != "ON" {
		t.Errorf("GetItem() = %+v, expected name Heating state ON", item)
	}
	if !item.IsGroup() {
		t.Errorf("GetItem() did not mark the item as a group")
	}
	if len(item.Members) != 2 {
		t.Fatalf("GetItem() returned %d members, expected 2", len(item.Members))
	}
	if item.Members[0].Name != "Heating_Livingroom" || item.Members[1].Name != "Heating_Bedroom" {
		t.Errorf("GetItem() member order not preserved: %+v", item.Members)
	}
}

func TestClient_GetItem_NotFound(t *testing.T) {
	client, done := newTestClient(t)
	defer done()

	_, err := client.GetItem(context.Background(), "Missing")
	if err == nil {
		t.Fatalf("GetItem() expected not-found error, got nil")
	}
	if !errors.IsNotFound(err) {
		t.Errorf("GetItem() error type = %v, expected notfound", errors.GetType(err))
	}
	if errors.IsType(err, errors.ErrorTypeNetwork) {
		t.Errorf("not-found must not be conflated with a transport failure")
	}
}

func TestClient_GetItem_TransportFailure(t *testing.T) {
	cfg := testutil.NewConfigBuilder().WithHost("127.0.0.1").WithPort(1).Build()
	log := logger.InitLogger(&logger.Config{Level: "fatal", Format: "json", Output: testWriter{t}})
	client := rest.NewClient(log, cfg, &testutil.FailingHTTPClient{
		Err: errors.New(errors.ErrorTypeInternal, "connection refused"),
	})

	_, err := client.GetItem(context.Background(), "Heating")
	if err == nil {
		t.Fatalf("GetItem() expected transport error, got nil")
	}
	if !errors.IsType(err, errors.ErrorTypeNetwork) {
		t.Errorf("GetItem() error type = %v, expected network", errors.GetType(err))
	}
}

func TestClient_ListItems(t *testing.T) {
	client, done := newTestClient(t)
	defer done()

	items, err := client.ListItems(context.Background())
	if err != nil {
		t.Fatalf("ListItems() unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("ListItems() returned %d items, expected 2", len(items))
	}
}

func TestClient_GetServiceConfig(t *testing.T) {
	client, done := newTestClient(t)
	defer done()

	cfg, err := client.GetServiceConfig(context.Background(), "org.openhab.basicui")
	if err != nil {
		t.Fatalf("GetServiceConfig() unexpected error: %v", err)
	}
	if cfg["defaultSitemap"] != "home" {
		t.Errorf("GetServiceConfig() defaultSitemap = %v, expected home", cfg["defaultSitemap"])
	}
}

func TestClient_ListSitemaps(t *testing.T) {
	client, done := newTestClient(t)
	defer done()

	sitemaps, err := client.ListSitemaps(context.Background())
	if err != nil {
		t.Fatalf("ListSitemaps() unexpected error: %v", err)
	}
	if len(sitemaps) != 1 {
		t.Fatalf("ListSitemaps() returned %d sitemaps, expected 1", len(sitemaps))
	}
	if sitemaps[0].Name != "home" {
		t.Errorf("ListSitemaps() name = %q, expected home", sitemaps[0].Name)
	}
	if sitemaps[0].Homepage.Link == "" {
		t.Errorf("ListSitemaps() homepage link missing")
	}
}

func TestClient_GetSpec(t *testing.T) {
	client, done := newTestClient(t)
	defer done()

	raw, err := client.GetSpec(context.Background())
	if err != nil {
		t.Fatalf("GetSpec() unexpected error: %v", err)
	}
	if len(raw) == 0 {
		t.Errorf("GetSpec() returned an empty document")
	}
}
