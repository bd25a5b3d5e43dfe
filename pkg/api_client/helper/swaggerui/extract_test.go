package swaggerui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initScript = `
window.onload = function() {
  // Build a system
  var url = window.location.search.match(/url=([^&]+)/);
  if (url && url.length > 1) {
    url = decodeURIComponent(url[1]);
  } else {
    url = window.location.origin;
  }
  let options = {
  "swaggerDoc": {
    "openapi": "3.0.0",
    "info": {
      "title": "Pets",
      "description": "   "
    },
    // interne paden
    "paths": {
      "/pets": {
        "get": { "summary": "List pets", "tags": ["pets"], },
      },
    },
  },
  /* ui opties
     over meerdere regels */
  "customOptions": {},
  "validatorUrl": undefined,
  "generatedAt": new Date(1700000000000),
};
  url = options.swaggerUrl || url
  let urls = options.swaggerUrls
  window.ui = SwaggerUIBundle(swaggerOptions)
}
`

func TestExtractNormalizesOptionsObject(t *testing.T) {
	out, err := Extract([]byte(initScript))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"swaggerDoc": {
			"openapi": "3.0.0",
			"info": {"title": "Pets", "description": ""},
			"paths": {"/pets": {"get": {"summary": "List pets", "tags": ["pets"]}}}
		},
		"customOptions": {},
		"validatorUrl": null,
		"generatedAt": "2024-01-01"
	}`, string(out))
}

func TestExtractWithoutOptionsAssignment(t *testing.T) {
	for name, script := range map[string]string{
		"empty":       "",
		"no options":  "window.onload = function() { let config = {}; url = 'x' }",
		"no boundary": "let options = { \"a\": 1 }",
	} {
		t.Run(name, func(t *testing.T) {
			out, err := Extract([]byte(script))
			assert.Nil(t, out)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrExtraction))

			var extErr *ExtractionError
			require.True(t, errors.As(err, &extErr))
			assert.Equal(t, len(script), extErr.Size)
		})
	}
}

func TestExtractTakesShortestMatch(t *testing.T) {
	script := `options = { "a": 1 };
  url = options.url
  let other = { "b": 2 };
  window.x = 1`

	out, err := Extract([]byte(script))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, string(out))
}
