package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/helper/openapi"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/helper/swaggerui"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/models"
	"github.com/rs/zerolog/log"
)

// SwaggerUIService haalt het bootstrap script van een Swagger-UI op en maakt er een collectie van
type SwaggerUIService struct {
	httpClient  *http.Client
	postman     *PostmanService
	swaggerPath string
}

// NewSwaggerUIService maakt een nieuwe service; een lege opts.SwaggerPath wordt swagger-ui-init.js
func NewSwaggerUIService(httpClient *http.Client, postman *PostmanService, opts models.ConvertOptions) *SwaggerUIService {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}
	if postman == nil {
		postman = NewPostmanService(opts)
	}
	swaggerPath := strings.TrimSpace(opts.SwaggerPath)
	if swaggerPath == "" {
		swaggerPath = swaggerui.DefaultScriptPath
	}
	return &SwaggerUIService{
		httpClient:  httpClient,
		postman:     postman,
		swaggerPath: swaggerPath,
	}
}

// Generate gebruikt het geconfigureerde script pad
func (s *SwaggerUIService) Generate(ctx context.Context, baseURL string) (*models.PostmanCollection, error) {
	return s.GenerateWithPath(ctx, baseURL, "")
}

// GenerateWithPath: fetch -> extract -> load -> build. Eén request, geen retries;
// fouten komen ongewijzigd terug (*FetchError, *swaggerui.ExtractionError, *openapi.ParseError).
func (s *SwaggerUIService) GenerateWithPath(ctx context.Context, baseURL, swaggerPath string) (*models.PostmanCollection, error) {
	if strings.TrimSpace(swaggerPath) == "" {
		swaggerPath = s.swaggerPath
	}
	scriptURL := ScriptURL(baseURL, swaggerPath)
	log.Info().Str("component", "swaggerui").Str("url", scriptURL).Msg("script ophalen")

	script, err := FetchURL(ctx, s.httpClient, scriptURL)
	if err != nil {
		return nil, err
	}
	normalized, err := swaggerui.Extract(script)
	if err != nil {
		return nil, err
	}
	doc, err := openapi.Load(normalized)
	if err != nil {
		return nil, err
	}
	return s.postman.Build(doc, Origin(baseURL))
}

// ScriptURL plakt het script pad achter de basis URL; een absolute URL blijft ongemoeid.
func ScriptURL(baseURL, swaggerPath string) string {
	if strings.HasPrefix(swaggerPath, "http://") || strings.HasPrefix(swaggerPath, "https://") {
		return swaggerPath
	}
	return strings.TrimRight(strings.TrimSpace(baseURL), "/") + "/" + strings.TrimLeft(swaggerPath, "/")
}
