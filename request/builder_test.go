package request

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tobich/oasreq/model"
)

func TestFromServerNoVariables(t *testing.T) {
	srv := &model.Server{URL: "https://petstore.swagger.io/v1"}

	d, err := FromServer(srv, nil)
	require.NoError(t, err)
	require.Equal(t, Descriptor{
		Scheme:   "https",
		Host:     "petstore.swagger.io",
		Port:     0,
		BasePath: "/v1",
	}, d)

	// Identical inputs yield identical descriptors.
	again, err := FromServer(srv, nil)
	require.NoError(t, err)
	require.True(t, d == again)
}

func TestFromServerDefaults(t *testing.T) {
	srv := &model.Server{
		URL: "http://{env}.example.com:{port}/api",
		Variables: map[string]model.ServerVariable{
			"env":  {Default: "staging"},
			"port": {Default: "8080"},
		},
	}

	d, err := FromServer(srv, nil)
	require.NoError(t, err)
	require.Equal(t, Descriptor{
		Scheme:   "http",
		Host:     "staging.example.com",
		Port:     8080,
		BasePath: "/api",
	}, d)
}

func TestFromServerEnumViolation(t *testing.T) {
	srv := &model.Server{
		URL: "http://{env}.example.com/api",
		Variables: map[string]model.ServerVariable{
			"env": {Default: "staging", Enum: []string{"prod", "staging"}},
		},
	}

	d, err := FromServer(srv, map[string]string{"env": "dev"})
	require.Error(t, err)
	require.Equal(t, Descriptor{}, d)

	var valueErr *InvalidValueError
	require.ErrorAs(t, err, &valueErr)
	require.Equal(t, "env", valueErr.Name)
	require.Equal(t, "dev", valueErr.Value)
	require.Equal(t, []string{"prod", "staging"}, valueErr.Allowed)
}

func TestFromServerEnumAcceptsMember(t *testing.T) {
	srv := &model.Server{
		URL: "http://{env}.example.com/api",
		Variables: map[string]model.ServerVariable{
			"env": {Default: "staging", Enum: []string{"prod", "staging"}},
		},
	}

	d, err := FromServer(srv, map[string]string{"env": "prod"})
	require.NoError(t, err)
	require.Equal(t, "prod.example.com", d.Host)
}

func TestFromServerOverridePrecedence(t *testing.T) {
	srv := &model.Server{
		URL: "https://{host}/v2",
		Variables: map[string]model.ServerVariable{
			"host": {Default: "default.example.com"},
		},
	}

	d, err := FromServer(srv, map[string]string{"host": "override.example.com"})
	require.NoError(t, err)
	require.Equal(t, "override.example.com", d.Host)
}

func TestFromServerRepeatedPlaceholder(t *testing.T) {
	srv := &model.Server{
		URL: "https://example.com/{v}/{v}",
		Variables: map[string]model.ServerVariable{
			"v": {Default: "a"},
		},
	}

	d, err := FromServer(srv, nil)
	require.NoError(t, err)
	require.Equal(t, "/a/a", d.BasePath)
}

func TestFromServerUnresolvedVariable(t *testing.T) {
	tests := []struct {
		name string
		srv  model.Server
	}{
		{
			name: "undeclared variable",
			srv:  model.Server{URL: "https://{env}.example.com"},
		},
		{
			name: "declared without default",
			srv: model.Server{
				URL:       "https://{env}.example.com",
				Variables: map[string]model.ServerVariable{"env": {}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromServer(&tt.srv, nil)
			require.Error(t, err)

			var unresolved *UnresolvedVariableError
			require.ErrorAs(t, err, &unresolved)
			require.Equal(t, "env", unresolved.Name)
		})
	}
}

func TestFromServerMalformedTemplate(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty placeholder", "https://example.com/{}"},
		{"unterminated brace", "https://example.com/{env"},
		{"stray closing brace", "https://example.com/env}"},
		{"nested brace", "https://example.com/{a{b}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromServer(&model.Server{URL: tt.url}, nil)
			require.Error(t, err)

			var tmplErr *MalformedTemplateError
			require.ErrorAs(t, err, &tmplErr)
		})
	}
}

func TestFromServerMalformedURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"unsupported scheme", "ftp://example.com/v1"},
		{"relative url", "example.com/v1"},
		{"missing host", "https:///v1"},
		{"port out of range", "http://example.com:70000/"},
		{"port zero", "http://example.com:0/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromServer(&model.Server{URL: tt.url}, nil)
			require.Error(t, err)

			var urlErr *MalformedURLError
			require.ErrorAs(t, err, &urlErr)
		})
	}
}

func TestFromServerBasePathNormalization(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com", "/"},
		{"https://example.com/", "/"},
		{"https://example.com/api/", "/api"},
		{"https://example.com/api//", "/api"},
		{"https://example.com/api/v2", "/api/v2"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			d, err := FromServer(&model.Server{URL: tt.url}, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, d.BasePath)
		})
	}
}

func TestFromServerPreservesExplicitPort(t *testing.T) {
	d, err := FromServer(&model.Server{URL: "http://localhost:8000/v1"}, nil)
	require.NoError(t, err)
	require.Equal(t, "http", d.Scheme)
	require.Equal(t, "localhost", d.Host)
	require.Equal(t, uint16(8000), d.Port)
	require.Equal(t, "/v1", d.BasePath)
}

func TestDescriptorURL(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		want string
	}{
		{
			name: "no port",
			d:    Descriptor{Scheme: "https", Host: "petstore.swagger.io", BasePath: "/v1"},
			want: "https://petstore.swagger.io/v1",
		},
		{
			name: "explicit port",
			d:    Descriptor{Scheme: "http", Host: "staging.example.com", Port: 8080, BasePath: "/api"},
			want: "http://staging.example.com:8080/api",
		},
		{
			name: "ipv6 host",
			d:    Descriptor{Scheme: "http", Host: "::1", Port: 8080, BasePath: "/"},
			want: "http://[::1]:8080/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.d.URL())
		})
	}
}

func TestDescriptorNewRequest(t *testing.T) {
	d := Descriptor{Scheme: "https", Host: "petstore.swagger.io", BasePath: "/v1"}

	req, err := d.NewRequest(context.Background(), http.MethodGet, "/pets")
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, req.Method)
	require.Equal(t, "https://petstore.swagger.io/v1/pets", req.URL.String())

	req, err = d.NewRequest(context.Background(), http.MethodGet, "")
	require.NoError(t, err)
	require.Equal(t, "https://petstore.swagger.io/v1", req.URL.String())
}

func TestFromSpecification(t *testing.T) {
	spec := &model.Specification{
		OpenAPI: "3.0.0",
		Servers: []model.Server{
			{URL: "https://petstore.swagger.io/v1"},
			{URL: "http://localhost:8000/v1"},
		},
	}

	descriptors, err := FromSpecification(spec, nil)
	require.NoError(t, err)
	require.Len(t, descriptors, 2)
	require.Equal(t, "petstore.swagger.io", descriptors[0].Host)
	require.Equal(t, "localhost", descriptors[1].Host)
}

func TestFromSpecificationAbortsOnError(t *testing.T) {
	spec := &model.Specification{
		OpenAPI: "3.0.0",
		Servers: []model.Server{
			{URL: "https://petstore.swagger.io/v1"},
			{URL: "https://{env}.example.com"},
		},
	}

	descriptors, err := FromSpecification(spec, nil)
	require.Error(t, err)
	require.Nil(t, descriptors)
	require.Contains(t, err.Error(), "servers[1]")

	var unresolved *UnresolvedVariableError
	require.ErrorAs(t, err, &unresolved)
}

func TestFromSpecificationNoServers(t *testing.T) {
	descriptors, err := FromSpecification(&model.Specification{OpenAPI: "3.0.0"}, nil)
	require.NoError(t, err)
	require.Nil(t, descriptors)
}
