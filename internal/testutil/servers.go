package testutil

import (
	"net/http"
	"net/http/httptest"
)

// NewHabTestServer creates a test server mimicking the REST API surface
// habctl talks to. This eliminates repeated httptest setup across test
// files.
func NewHabTestServer() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/rest/items/Heating", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"name": "Heating",
			"state": "ON",
			"type": "Group",
			"members": [
				{"name": "Heating_Livingroom", "state": "ON", "type": "Switch"},
				{"name": "Heating_Bedroom", "state": "OFF", "type": "Switch"}
			]
		}`))
	})

	mux.HandleFunc("/rest/items/Temperature_Livingroom", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"name": "Temperature_Livingroom", "state": "21.5", "type": "Number"}`))
	})

	mux.HandleFunc("/rest/items/Missing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"message": "Item Missing does not exist!", "http-code": 404}}`))
	})

	mux.HandleFunc("/rest/items", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[
			{"name": "Heating", "state": "ON", "type": "Group"},
			{"name": "Temperature_Livingroom", "state": "21.5", "type": "Number"}
		]`))
	})

	mux.HandleFunc("/rest/services/org.openhab.basicui/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"defaultSitemap": "home", "iconType": "svg", "nbFormsMax": 2}`))
	})

	mux.HandleFunc("/rest/sitemaps", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[
			{
				"name": "home",
				"label": "Home",
				"link": "http://hab.local:8080/rest/sitemaps/home",
				"homepage": {"link": "http://hab.local:8080/rest/sitemaps/home/home"}
			}
		]`))
	})

	mux.HandleFunc("/rest/spec", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(MinimalOpenAPISpec))
	})

	return httptest.NewServer(mux)
}

// MinimalOpenAPISpec is a small but valid OpenAPI 3 document covering the
// endpoints habctl uses.
const MinimalOpenAPISpec = `{
	"openapi": "3.0.1",
	"info": {"title": "openHAB REST API", "version": "5"},
	"paths": {
		"/items": {
			"get": {"summary": "Get all available items."}
		},
		"/items/{itemname}": {
			"get": {"summary": "Gets a single item."}
		},
		"/sitemaps": {
			"get": {"summary": "Get all available sitemaps."}
		}
	}
}`
