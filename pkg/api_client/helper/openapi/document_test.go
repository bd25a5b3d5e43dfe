package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstore = `{
  "openapi": "3.0.0",
  "info": {"title": "Petstore", "description": "Alle dieren"},
  "servers": [{"url": "https://petstore.example.com/v1"}],
  "paths": {
    "/pets/{id}": {
      "parameters": [{"name": "id", "in": "path"}],
      "put": {"summary": "Update pet", "tags": ["pets", "admin"]},
      "get": {"description": "Haal dier op", "parameters": [{"name": "verbose", "in": "query", "description": "meer"}]}
    },
    "/a": {"delete": {"tags": []}},
    "/zoo": "niet-een-object"
  },
  "components": {
    "schemas": {
      "Pet": {
        "type": "object",
        "properties": {
          "zeta": {"type": "string"},
          "alpha": {"type": "number", "example": 3},
          "nested": {"$ref": "#/components/schemas/Tag"}
        }
      },
      "Tag": {"type": "object"}
    }
  }
}`

func TestPathsAndOperationsFollowDocumentOrder(t *testing.T) {
	doc := NewDocument([]byte(petstore))

	var seen []string
	err := doc.Paths(func(path string, item PathItem) error {
		return item.Operations(func(method string, _ Operation) error {
			seen = append(seen, method+" "+path)
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"put /pets/{id}", "get /pets/{id}", "delete /a"}, seen)
}

func TestOperationAccessors(t *testing.T) {
	doc := NewDocument([]byte(petstore))

	ops := map[string]Operation{}
	var pathParams []Parameter
	_ = doc.Paths(func(path string, item PathItem) error {
		if path == "/pets/{id}" {
			pathParams = item.Parameters()
		}
		return item.Operations(func(method string, op Operation) error {
			ops[method] = op
			return nil
		})
	})

	assert.Equal(t, []Parameter{{Name: "id", In: "path"}}, pathParams)

	summary, ok := ops["put"].Summary()
	assert.True(t, ok)
	assert.Equal(t, "Update pet", summary)
	tags, ok := ops["put"].Tags()
	assert.True(t, ok)
	assert.Equal(t, []string{"pets", "admin"}, tags)

	_, ok = ops["get"].Summary()
	assert.False(t, ok)
	assert.Equal(t, "Haal dier op", ops["get"].Description())
	_, ok = ops["get"].Tags()
	assert.False(t, ok)
	assert.Equal(t, []Parameter{{Name: "verbose", In: "query", Description: "meer"}}, ops["get"].Parameters())

	tags, ok = ops["delete"].Tags()
	assert.True(t, ok)
	assert.Empty(t, tags)
	_, ok = ops["delete"].RequestBody()
	assert.False(t, ok)
}

func TestInfoAndServer(t *testing.T) {
	doc := NewDocument([]byte(petstore))
	title, desc, ok := doc.Info()
	assert.True(t, ok)
	assert.Equal(t, "Petstore", title)
	assert.Equal(t, "Alle dieren", desc)
	assert.Equal(t, "https://petstore.example.com/v1", doc.ServerURL())

	empty := NewDocument([]byte(`{"paths": {}}`))
	_, _, ok = empty.Info()
	assert.False(t, ok)
	assert.Equal(t, "", empty.ServerURL())
}

func TestRequestBodyJSONSchema(t *testing.T) {
	doc := NewDocument([]byte(`{"paths": {"/x": {"post": {"requestBody": {"content": {
		"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}},
		"text/plain": {"schema": {"type": "string"}}
	}}}}}}`))

	var schema Schema
	var found bool
	_ = doc.Paths(func(_ string, item PathItem) error {
		return item.Operations(func(_ string, op Operation) error {
			rb, ok := op.RequestBody()
			require.True(t, ok)
			schema, found = rb.JSONSchema()
			return nil
		})
	})
	require.True(t, found)
	assert.Equal(t, "#/components/schemas/Pet", schema.Ref())
}
