package apiv1

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The served contract must stay loadable and internally consistent, and the
// paths it documents must match what RegisterHandlers wires up.
func TestOpenAPIDocumentIsValid(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../public/docs/v1/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	for _, path := range []string{"/ping", "/campsites", "/campsites/{code}", "/photos/{uuid}/status"} {
		assert.NotNilf(t, doc.Paths.Find(path), "path %s missing from contract", path)
	}
}
