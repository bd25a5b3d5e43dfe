package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/helper/openapi"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/helper/problem"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/helper/swaggerui"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/models"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/services"
	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
)

type ToolsController struct {
	Postman    *services.PostmanService
	SwaggerUI  *services.SwaggerUIService
	HTTPClient *http.Client
}

func NewToolsController(postman *services.PostmanService, swaggerUI *services.SwaggerUIService, httpClient *http.Client) *ToolsController {
	return &ToolsController{Postman: postman, SwaggerUI: swaggerUI, HTTPClient: httpClient}
}

/* ------------------------- POSTMAN ------------------------- */

// POST /v1/postman/convert (body = { oasUrl } of { oas } of pure OAS)
func (tc *ToolsController) GeneratePostmanFromOASPOST(c *gin.Context, body *models.OASBody) error {
	content, err := tc.oasFromBody(c.Request.Context(), body)
	if err != nil {
		return toProblem(body.OASUrl, err)
	}

	jsonBytes, name, err := tc.Postman.ConvertOpenAPIToPostman(content, body.BaseURL)
	if err != nil {
		return toProblem(body.OASUrl, err)
	}
	if name == "" {
		name = "postman-collection"
	}

	c.Header("Content-Type", "application/json")
	c.Header("Content-Disposition", "attachment; filename=\""+name+".json\"")
	c.Data(http.StatusOK, "application/json", jsonBytes)
	return nil
}

/* ------------------------- SWAGGER-UI ------------------------- */

// POST /v1/postman/swagger-ui (body = { url, swaggerPath? })
func (tc *ToolsController) GeneratePostmanFromSwaggerUI(c *gin.Context, body *models.SwaggerUIInput) error {
	if body == nil || strings.TrimSpace(body.URL) == "" {
		return problem.NewBadRequest("", "Veld 'url' is verplicht")
	}
	col, err := tc.SwaggerUI.GenerateWithPath(c.Request.Context(), body.URL, body.SwaggerPath)
	if err != nil {
		return toProblem(body.URL, err)
	}
	jsonBytes, err := services.MarshalCollection(col)
	if err != nil {
		return problem.NewInternalServerError(err.Error())
	}

	c.Header("Content-Type", "application/json")
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(services.DefaultOutputName(body.URL)))
	c.Data(http.StatusOK, "application/json", jsonBytes)
	return nil
}

// oasFromBody: voorkeur voor oasUrl, anders de meegestuurde inhoud (JSON of YAML als string)
func (tc *ToolsController) oasFromBody(ctx context.Context, body *models.OASBody) ([]byte, error) {
	if body == nil {
		return nil, services.ErrEmptyOAS
	}
	if u := strings.TrimSpace(body.OASUrl); u != "" {
		return services.FetchURL(ctx, tc.HTTPClient, u)
	}
	raw := []byte(strings.TrimSpace(string(body.OAS)))
	if len(raw) == 0 {
		return nil, services.ErrEmptyOAS
	}
	// stringified JSON/YAML
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return []byte(s), nil
		}
	}
	return raw, nil
}

func toProblem(instance string, err error) error {
	var fetchErr *services.FetchError
	var parseErr *openapi.ParseError
	switch {
	case errors.Is(err, services.ErrEmptyOAS):
		return problem.NewBadRequest(instance, err.Error())
	case errors.As(err, &fetchErr):
		return problem.NewBadGateway(instance, err.Error())
	case errors.Is(err, swaggerui.ErrExtraction):
		return problem.NewUnprocessableEntity(instance, err.Error())
	case errors.As(err, &parseErr):
		return problem.NewUnprocessableEntity(instance, "Kon OpenAPI niet parsen", problem.InvalidParam{
			Name:   "offset " + strconv.FormatInt(parseErr.Offset, 10),
			Reason: parseErr.Context,
		})
	default:
		return problem.NewInternalServerError(err.Error())
	}
}
