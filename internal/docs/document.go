// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docs

import (
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/go-chi/chi/v5"
	"github.com/paksentiment/paksentiment/internal/app"
)

// OpenAPIVersion is the version of the rendered documents.
const OpenAPIVersion = "3.0.3"

const componentSchemaPrefix = "#/components/schemas/"

var (
	pathParamPattern = regexp.MustCompile(`\{([^}:]+)(:[^}]*)?\}`)
	timeType         = reflect.TypeOf(time.Time{})
)

// RouteSource is an application whose routes can be documented.
type RouteSource interface {
	Routes() chi.Routes
	Route(method, pattern string) (app.Route, bool)
}

// CreateDocument renders an OpenAPI document from d and every route
// registered on src at the time of the call. Hidden routes are skipped.
// Routes added later are not part of the document.
func CreateDocument(src RouteSource, d Descriptor) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: OpenAPIVersion,
		Info: &openapi3.Info{
			Title:          d.Title,
			Description:    d.Description,
			TermsOfService: d.TermsOfService,
			Version:        d.Version,
		},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: openapi3.Schemas{}},
	}
	if d.License.Name != "" {
		doc.Info.License = &openapi3.License{Name: d.License.Name, URL: d.License.URL}
	}
	for _, url := range d.Servers {
		doc.Servers = append(doc.Servers, &openapi3.Server{URL: url})
	}

	registry := &schemaRegistry{schemas: doc.Components.Schemas}
	walkFn := func(method, pattern string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		route, ok := src.Route(method, pattern)
		if !ok {
			route = app.Route{Method: method, Pattern: pattern}
		}
		if route.Hidden {
			return nil
		}

		op, err := newOperation(route, registry)
		if err != nil {
			return fmt.Errorf("%s %s: %w", method, pattern, err)
		}

		path := openAPIPath(pattern)
		item := doc.Paths.Value(path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(path, item)
		}
		item.SetOperation(method, op)
		return nil
	}

	if err := chi.Walk(src.Routes(), walkFn); err != nil {
		return nil, fmt.Errorf("error rendering API document: %w", err)
	}

	return doc, nil
}

func newOperation(route app.Route, registry *schemaRegistry) (*openapi3.Operation, error) {
	op := openapi3.NewOperation()
	op.Summary = route.Summary
	op.Description = route.Description
	op.OperationID = route.OperationID
	op.Tags = slices.Clone(route.Tags)

	for _, name := range pathParams(route.Pattern) {
		op.AddParameter(openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema()))
	}

	if route.Query != nil {
		params, err := queryParams(route.Query)
		if err != nil {
			return nil, err
		}
		op.Parameters = append(op.Parameters, params...)
	}

	if route.Body != nil {
		ref, err := registry.ref(route.Body)
		if err != nil {
			return nil, err
		}
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(ref),
		}
	}

	status := route.SuccessStatus()
	response := openapi3.NewResponse().WithDescription(http.StatusText(status))
	if route.Response != nil {
		ref, err := registry.ref(route.Response)
		if err != nil {
			return nil, err
		}
		response.WithJSONSchemaRef(ref)
	}

	op.Responses = openapi3.NewResponsesWithCapacity(1)
	op.Responses.Set(strconv.Itoa(status), &openapi3.ResponseRef{Value: response})

	return op, nil
}

// schemaRegistry generates schemas for named structs once and keeps them
// under components, handing out references.
type schemaRegistry struct {
	schemas openapi3.Schemas
}

func (r *schemaRegistry) ref(v any) (*openapi3.SchemaRef, error) {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch {
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		items, err := r.ref(reflect.Zero(t.Elem()).Interface())
		if err != nil {
			return nil, err
		}
		array := openapi3.NewArraySchema()
		array.Items = items
		return openapi3.NewSchemaRef("", array), nil

	case t.Kind() != reflect.Struct || t.Name() == "" || t == timeType:
		return openapi3gen.NewSchemaRefForValue(reflect.Zero(t).Interface(), openapi3.Schemas{})
	}

	name := t.Name()
	if _, ok := r.schemas[name]; !ok {
		generated, err := openapi3gen.NewSchemaRefForValue(reflect.Zero(t).Interface(), openapi3.Schemas{})
		if err != nil {
			return nil, fmt.Errorf("error generating schema for %s: %w", name, err)
		}
		generated.Value.Required = requiredFields(t)
		r.schemas[name] = generated
	}

	return openapi3.NewSchemaRef(componentSchemaPrefix+name, nil), nil
}

func queryParams(query any) (openapi3.Parameters, error) {
	t := reflect.TypeOf(query)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("query must be a struct, got %s", t)
	}

	required := requiredFields(t)
	var params openapi3.Parameters
	for i := range t.NumField() {
		f := t.Field(i)
		name := jsonName(f)
		if !f.IsExported() || name == "" {
			continue
		}

		schema, err := openapi3gen.NewSchemaRefForValue(reflect.Zero(f.Type).Interface(), openapi3.Schemas{})
		if err != nil {
			return nil, fmt.Errorf("error generating schema for query %s: %w", name, err)
		}

		p := openapi3.NewQueryParameter(name).WithSchema(schema.Value)
		p.Required = slices.Contains(required, name)
		params = append(params, &openapi3.ParameterRef{Value: p})
	}

	return params, nil
}

// requiredFields lists the JSON names of fields tagged `validate:"required"`.
func requiredFields(t reflect.Type) []string {
	var required []string
	for i := range t.NumField() {
		f := t.Field(i)
		name := jsonName(f)
		if !f.IsExported() || name == "" {
			continue
		}
		if slices.Contains(strings.Split(f.Tag.Get("validate"), ","), "required") {
			required = append(required, name)
		}
	}
	return required
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}

func pathParams(pattern string) []string {
	var names []string
	for _, m := range pathParamPattern.FindAllStringSubmatch(pattern, -1) {
		names = append(names, m[1])
	}
	return names
}

// openAPIPath drops chi regexp constraints: /posts/{id:[0-9]+} → /posts/{id}.
func openAPIPath(pattern string) string {
	return pathParamPattern.ReplaceAllString(pattern, "{$1}")
}
