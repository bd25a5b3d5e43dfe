package openapi

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUnwrapsSwaggerDoc(t *testing.T) {
	doc, err := Load([]byte(`{"swaggerDoc": {"openapi": "3.0.0", "paths": {}}, "customOptions": {}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"openapi": "3.0.0", "paths": {}}`, string(doc.Raw()))
}

func TestLoadWithoutWrapperReturnsDocument(t *testing.T) {
	in := `{"openapi": "3.0.0", "info": {"title": "Pets"}}`
	doc, err := Load([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, in, string(doc.Raw()))

	arr := `[1, 2]`
	doc, err = Load([]byte(arr))
	require.NoError(t, err)
	assert.Equal(t, arr, string(doc.Raw()))
}

func TestLoadNestedSwaggerDocIsNotUnwrapped(t *testing.T) {
	in := `{"info": {"swaggerDoc": {"x": 1}}}`
	doc, err := Load([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, in, string(doc.Raw()))
}

func TestLoadReportsParseError(t *testing.T) {
	in := []byte(`{"a": 1,, "b": 2}`)
	doc, err := Load(in)
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.GreaterOrEqual(t, perr.Offset, int64(0))
	assert.LessOrEqual(t, perr.Offset, int64(len(in)))
	assert.NotEmpty(t, perr.Context)
	assert.True(t, strings.Contains(string(in), perr.Context))
	assert.Contains(t, perr.Error(), "positie")
}

func TestLoadRejectsNonStrictJSON(t *testing.T) {
	for _, in := range []string{
		`{"a": 01}`,
		"{\"a\": \"line\nbreak\"}",
		"{\"a\": \"tab\there\"}",
		`{"a": 1} trailing`,
	} {
		t.Run(in, func(t *testing.T) {
			doc, err := Load([]byte(in))
			assert.Nil(t, doc)
			require.ErrorIs(t, err, ErrParse)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Greater(t, perr.Offset, int64(0))
			assert.LessOrEqual(t, perr.Offset, int64(len(in)))
			assert.NotEmpty(t, perr.Context)
		})
	}
}

func TestParseErrorContextWindow(t *testing.T) {
	data := []byte(strings.Repeat("a", 100) + strings.Repeat("b", 100))
	cause := errors.New("boom")

	mid := newParseError(data, 100, cause)
	assert.Equal(t, int64(100), mid.Offset)
	assert.Equal(t, strings.Repeat("a", 50)+strings.Repeat("b", 50), mid.Context)
	assert.Same(t, cause, errors.Unwrap(mid))

	start := newParseError(data, 10, cause)
	assert.Equal(t, string(data[:60]), start.Context)

	unknown := newParseError(data, -1, cause)
	assert.Equal(t, int64(200), unknown.Offset)
	assert.Equal(t, string(data[150:]), unknown.Context)
}
