package oasreq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAndEndpoints(t *testing.T) {
	doc := []byte(`openapi: 3.0.0
info:
  title: t
  version: "1"
servers:
  - url: https://petstore.swagger.io/v1
  - url: http://{env}.example.com:{port}/api
    variables:
      env:
        default: staging
      port:
        default: "8080"
paths: {}
`)
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, doc, 0644))

	spec, err := Load(path)
	require.NoError(t, err)
	require.Len(t, spec.Servers, 2)

	targets, err := Endpoints(spec, nil)
	require.NoError(t, err)
	require.Len(t, targets, 2)
	require.Equal(t, "https://petstore.swagger.io/v1", targets[0].URL())
	require.Equal(t, "http://staging.example.com:8080/api", targets[1].URL())

	overridden, err := Endpoints(spec, map[string]string{"env": "prod"})
	require.NoError(t, err)
	require.Equal(t, "prod.example.com", overridden[1].Host)
}
