package openapi

import (
	"strings"
	"testing"
)

const testSpec = `{
	"openapi": "3.0.1",
	"info": {"title": "openHAB REST API", "version": "5"},
	"paths": {
		"/items": {
			"get": {"summary": "Get all available items."},
			"post": {"summary": "Adds a new item."}
		},
		"/sitemaps": {
			"get": {"summary": "Get all available sitemaps."}
		}
	}
}`

func TestParse(t *testing.T) {
	spec, err := Parse([]byte(testSpec))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if info := spec.Info(); info == nil || info.Title != "openHAB REST API" {
		t.Errorf("Info() = %+v, expected openHAB REST API title", info)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("not an openapi document")); err == nil {
		t.Errorf("Parse() expected error for invalid document")
	}
}

func TestEndpoints(t *testing.T) {
	spec, err := Parse([]byte(testSpec))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{"wildcard", "*", 3},
		{"empty filter", "", 3},
		{"prefix", "/items*", 2},
		{"exact", "/sitemaps", 1},
		{"no match", "/things", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoints := spec.Endpoints(tt.filter)
			if len(endpoints) != tt.want {
				t.Errorf("Endpoints(%q) returned %d endpoints, expected %d", tt.filter, len(endpoints), tt.want)
			}
		})
	}
}

func TestEndpoints_Ordering(t *testing.T) {
	spec, err := Parse([]byte(testSpec))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	endpoints := spec.Endpoints("/items")
	if len(endpoints) != 2 {
		t.Fatalf("Endpoints() returned %d endpoints, expected 2", len(endpoints))
	}
	// GET sorts before POST for the same path
	if endpoints[0].Method != "GET" || endpoints[1].Method != "POST" {
		t.Errorf("Endpoints() order = %s, %s; expected GET, POST", endpoints[0].Method, endpoints[1].Method)
	}
}

func TestRenderIndex(t *testing.T) {
	spec, err := Parse([]byte(testSpec))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	out := spec.RenderIndex(spec.Endpoints("*"))
	for _, want := range []string{"/items", "/sitemaps", "GET", "Get all available items."} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderIndex() missing %q", want)
		}
	}

	empty := spec.RenderIndex(nil)
	if !strings.Contains(empty, "No endpoints") {
		t.Errorf("RenderIndex(nil) = %q, expected placeholder message", empty)
	}
}
