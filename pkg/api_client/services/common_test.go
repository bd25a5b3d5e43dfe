package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutputName(t *testing.T) {
	assert.Equal(t, "petstore_collection.json", DefaultOutputName("https://petstore.swagger.io/v2/docs"))
	assert.Equal(t, "localhost_collection.json", DefaultOutputName("http://localhost:8080/docs"))
	assert.Equal(t, "api_collection.json", DefaultOutputName("https://api"))
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, "https://api.example.com", Origin("https://api.example.com/docs/index.html?x=1"))
	assert.Equal(t, "http://localhost:8080", Origin("http://localhost:8080/docs"))
	assert.Equal(t, "", Origin("geen url"))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "pet-store-api", SanitizeFilename("  Pet Store API! "))
	assert.Equal(t, "", SanitizeFilename("..."))
}

func TestWriteCollection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x_collection.json")
	col := &models.PostmanCollection{
		Info: models.PostmanInfo{Name: "X <test>", Schema: models.PostmanSchemaURL},
		Item: []*models.PostmanFolder{},
	}

	require.NoError(t, WriteCollection(path, col))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "\n  \"info\": {")
	assert.Contains(t, string(b), `"name": "X <test>"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteCollectionMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bestaat-niet", "x.json")
	assert.Error(t, WriteCollection(path, &models.PostmanCollection{}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
