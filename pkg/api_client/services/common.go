package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// ErrEmptyOAS is returned when provided OpenAPI content is empty
var ErrEmptyOAS = errors.New("leeg OpenAPI document (geen inhoud)")

// ErrFetch wordt gematcht door elke *FetchError (errors.Is)
var ErrFetch = errors.New("ophalen mislukt")

// DefaultFetchTimeout is de timeout van de standaard HTTP client
const DefaultFetchTimeout = 30 * time.Second

// FetchError beschrijft een transportfout of een niet-2xx status bij het ophalen
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("kon %s niet ophalen: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("kon %s niet ophalen: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// NewHTTPClient maakt een client met de opgegeven timeout (0 = DefaultFetchTimeout)
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &http.Client{Timeout: timeout}
}

// FetchURL haalt de inhoud op van een URL; één poging, geen retries
func FetchURL(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	if client == nil {
		client = NewHTTPClient(0)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	return b, nil
}

var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename maakt een bestandsnaam veilig
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	name = filenameRe.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-._")
	if name == "" {
		return ""
	}
	return name
}

// Origin geeft scheme://host van een URL; pad en query vervallen.
func Origin(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// DefaultOutputName leidt "<eerste DNS label>_collection.json" af uit de URL
func DefaultOutputName(rawURL string) string {
	label := ""
	if u, err := url.Parse(strings.TrimSpace(rawURL)); err == nil {
		label, _, _ = strings.Cut(u.Hostname(), ".")
	}
	return label + "_collection.json"
}

// MarshalCollection serialiseert met twee spaties inspringing en zonder HTML escaping
func MarshalCollection(v any) ([]byte, error) {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return []byte(strings.TrimSuffix(buf.String(), "\n")), nil
}

// WriteCollection schrijft de collectie naar path via een tijdelijk bestand,
// zodat er bij een fout nooit een half bestand achterblijft.
func WriteCollection(path string, v any) error {
	b, err := MarshalCollection(v)
	if err != nil {
		return fmt.Errorf("kon collectie niet serialiseren: %w", err)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".collection-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
