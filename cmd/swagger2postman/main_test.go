package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const script = `let options = {"swaggerDoc": {"info": {"title": "CLI"}, "paths": {"/ping": {"get": {}}}}};
  url = options.swaggerUrl`

func upstream(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/swagger-ui-init.js", "/custom.js":
			_, _ = w.Write([]byte(script))
		case "/broken.js":
			_, _ = w.Write([]byte(`let options = {"a": 'x'};` + "\nurl = 1"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestRunWritesCollection(t *testing.T) {
	base := upstream(t)
	out := filepath.Join(t.TempDir(), "out.json")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-u", base, "--output", out, "-s", "custom.js"}, &stdout, &stderr)
	require.Equal(t, 0, code, stdout.String())
	assert.Equal(t, "Collection saved to "+out+"\n", stdout.String())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name": "GET /ping"`)
}

func TestRunDefaultOutputName(t *testing.T) {
	base := upstream(t)
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"--url", base}, &stdout, &stderr))
	_, err = os.Stat(filepath.Join(dir, "127_collection.json"))
	assert.NoError(t, err)
}

func TestRunFailure(t *testing.T) {
	base := upstream(t)
	out := filepath.Join(t.TempDir(), "out.json")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-u", base + "/nope", "-o", out}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Regexp(t, `^Error: kon .*swagger-ui-init.js niet ophalen: HTTP 404\n$`, stdout.String())
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRunVerboseTrace(t *testing.T) {
	base := upstream(t)
	out := filepath.Join(t.TempDir(), "out.json")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-u", base, "-s", "broken.js", "-o", out, "-v"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "Error: JSON fout op positie")
	assert.Contains(t, stdout.String(), "Trace:")
	assert.Contains(t, stdout.String(), "*openapi.ParseError")
	assert.Contains(t, stdout.String(), "context: ")
}

func TestRunRequiresURL(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "-u/--url")
}
