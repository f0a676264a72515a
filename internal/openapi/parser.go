// Package openapi renders an endpoint index from the OpenAPI document the
// server publishes under /rest/spec.
package openapi

import (
	"sort"
	"strings"

	"github.com/habtools/habctl/internal/errors"
	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
)

// Endpoint is one operation of the server's REST surface.
type Endpoint struct {
	Path    string
	Method  string
	Summary string
}

// Spec is a parsed OpenAPI document.
type Spec struct {
	model *libopenapi.DocumentModel[v3.Document]
}

// Parse builds a v3 model from raw OpenAPI document bytes.
func Parse(data []byte) (*Spec, error) {
	document, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to parse OpenAPI document")
	}

	model, errs := document.BuildV3Model()
	if len(errs) > 0 {
		return nil, errors.Newf(errors.ErrorTypeParse, "failed to build OpenAPI model: %v", errs)
	}

	return &Spec{model: model}, nil
}

// Info returns the document's info section.
func (s *Spec) Info() *base.Info {
	return s.model.Model.Info
}

// Endpoints lists the operations matching the path filter, sorted by path
// then method. The filter accepts "", "*", a "prefix*" pattern, or an
// exact path.
func (s *Spec) Endpoints(pathFilter string) []Endpoint {
	var endpoints []Endpoint

	pathItems := s.model.Model.Paths.PathItems
	if pathItems == nil {
		return endpoints
	}

	for pathPattern, pathItem := range pathItems.FromOldest() {
		if !matchesPathFilter(pathPattern, pathFilter) {
			continue
		}

		for method, op := range operations(pathItem) {
			endpoints = append(endpoints, Endpoint{
				Path:    pathPattern,
				Method:  strings.ToUpper(method),
				Summary: op.Summary,
			})
		}
	}

	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Path != endpoints[j].Path {
			return endpoints[i].Path < endpoints[j].Path
		}
		return methodOrder(endpoints[i].Method) < methodOrder(endpoints[j].Method)
	})

	return endpoints
}

func matchesPathFilter(path, filter string) bool {
	if filter == "" || filter == "*" {
		return true
	}

	if strings.HasSuffix(filter, "*") {
		return strings.HasPrefix(path, strings.TrimSuffix(filter, "*"))
	}

	return path == filter
}

func operations(pathItem *v3.PathItem) map[string]*v3.Operation {
	ops := make(map[string]*v3.Operation)

	if pathItem.Get != nil {
		ops["get"] = pathItem.Get
	}
	if pathItem.Post != nil {
		ops["post"] = pathItem.Post
	}
	if pathItem.Put != nil {
		ops["put"] = pathItem.Put
	}
	if pathItem.Delete != nil {
		ops["delete"] = pathItem.Delete
	}
	if pathItem.Patch != nil {
		ops["patch"] = pathItem.Patch
	}
	if pathItem.Head != nil {
		ops["head"] = pathItem.Head
	}
	if pathItem.Options != nil {
		ops["options"] = pathItem.Options
	}

	return ops
}

func methodOrder(method string) int {
	order := map[string]int{
		"GET":     0,
		"POST":    1,
		"PUT":     2,
		"PATCH":   3,
		"DELETE":  4,
		"HEAD":    5,
		"OPTIONS": 6,
	}
	if v, ok := order[method]; ok {
		return v
	}
	return 999
}
