package api_client

import (
	"errors"
	"time"

	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/handler"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/helper/problem"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/loopfz/gadgeto/tonic"
	"github.com/rs/zerolog/log"
	"github.com/wI2L/fizz"
	"github.com/wI2L/fizz/openapi"
)

var (
	apiVersionHeader = fizz.Header(
		"API-Version",
		"De API-versie van de response",
		"",
	)

	badGatewayResponse = fizz.Response(
		"502",
		"Bad Gateway",
		nil,
		nil,
		nil,
	)

	unprocessableResponse = fizz.Response(
		"422",
		"Unprocessable Entity",
		nil,
		nil,
		nil,
	)
)

func NewRouter(apiVersion string, controller *handler.ToolsController) *fizz.Fizz {
	g := gin.New()
	g.Use(gin.Recovery(), RequestLogger())

	// Configure CORS to allow access from everywhere
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "API-Version"}
	config.ExposeHeaders = []string{"API-Version"}
	g.Use(cors.New(config))

	g.Use(APIVersionMiddleware(apiVersion))
	f := fizz.NewFromEngine(g)

	f.Generator().SetServers([]*openapi.Server{
		{
			URL:         "https://api.developer.overheid.nl/postman/v1",
			Description: "Production",
		},
		{
			URL:         "https://api-register.don.apps.digilab.network/postman/v1",
			Description: "Test",
		},
	})

	gen := f.Generator()

	gen.API().Components.Headers["API-Version"] = &openapi.HeaderOrRef{
		Header: &openapi.Header{
			Description: "De API-versie van de response",
			Schema: &openapi.SchemaOrRef{
				Schema: &openapi.Schema{
					Type:    "string",
					Example: "1.0.0",
				},
			},
		},
	}

	info := &openapi.Info{
		Title:       "Postman API v1",
		Description: "Genereert Postman collecties uit OpenAPI documenten en Swagger-UI pagina's",
		Version:     apiVersion,
		Contact: &openapi.Contact{
			Name:  "Team developer.overheid.nl",
			Email: "developer.overheid@geonovum.nl",
			URL:   "https://github.com/developer-overheid-nl/don-swagger-postman/issues",
		},
	}

	root := f.Group("/v1", "API v1", "Postman API V1 routes")

	// Converters
	tools := root.Group("", "Postman", "Conversies naar Postman collecties")

	// POST /v1/postman/convert
	tools.POST("/postman/convert",
		[]fizz.OperationOption{
			fizz.ID("CreatePostmanCollection"),
			fizz.Summary("Maak Postman-collectie (POST)"),
			fizz.Description("Converteert OpenAPI naar Postman Collection JSON. Body: { oasUrl } of { oas } (stringified JSON of YAML), optioneel { baseUrl }."),
			apiVersionHeader,
			badGatewayResponse,
			unprocessableResponse,
		},
		tonic.Handler(controller.GeneratePostmanFromOASPOST, 200),
	)

	// POST /v1/postman/swagger-ui
	tools.POST("/postman/swagger-ui",
		[]fizz.OperationOption{
			fizz.ID("CreatePostmanCollectionFromSwaggerUI"),
			fizz.Summary("Maak Postman-collectie uit Swagger-UI (POST)"),
			fizz.Description("Haalt swagger-ui-init.js (of swaggerPath) op bij de opgegeven URL, haalt het ingebedde OpenAPI document eruit en converteert dat naar een Postman Collection JSON. Body: { url, swaggerPath? }."),
			apiVersionHeader,
			badGatewayResponse,
			unprocessableResponse,
		},
		tonic.Handler(controller.GeneratePostmanFromSwaggerUI, 200),
	)

	// OpenAPI documentatie
	f.GET("/v1/openapi.json", []fizz.OperationOption{}, f.OpenAPI(info, "json"))

	return f
}

// ProblemErrorHook rendert fouten als application/problem+json
func ProblemErrorHook(c *gin.Context, err error) (int, interface{}) {
	var apiErr problem.APIError
	if errors.As(err, &apiErr) {
		c.Header("Content-Type", "application/problem+json")
		return apiErr.Status, apiErr
	}

	// Bind/validatie fouten van tonic → 400
	var bindErr tonic.BindError
	if errors.As(err, &bindErr) {
		bad := problem.NewBadRequest("", bindErr.Error())
		c.Header("Content-Type", "application/problem+json")
		return bad.Status, bad
	}

	// Alles anders → 500
	internal := problem.NewInternalServerError(err.Error())
	c.Header("Content-Type", "application/problem+json")
	return internal.Status, internal
}

type apiVersionWriter struct {
	gin.ResponseWriter
	version string
}

func (w *apiVersionWriter) WriteHeader(code int) {
	if code >= 200 && code < 300 {
		w.Header().Set("API-Version", w.version)
	}
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger logt elke request via zerolog
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func APIVersionMiddleware(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &apiVersionWriter{c.Writer, version}
		c.Next()
	}
}
