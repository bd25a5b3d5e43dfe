package services

import (
	"fmt"
	"strings"

	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/helper/openapi"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/models"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/invopop/yaml"
	orderedmap "github.com/pb33f/ordered-map/v2"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultTag is de map voor operaties zonder tags
	DefaultTag            = "default"
	defaultCollectionName = "API Collection"
	baseURLVariable       = "{{baseUrl}}"
)

// PostmanService converteert OAS naar Postman Collections
type PostmanService struct {
	defaultTag string
}

// NewPostmanService Constructor-functie
func NewPostmanService(opts models.ConvertOptions) *PostmanService {
	tag := strings.TrimSpace(opts.DefaultTag)
	if tag == "" {
		tag = DefaultTag
	}
	return &PostmanService{defaultTag: tag}
}

// ConvertOpenAPIToPostman converteert een OAS (JSON of YAML) naar een Postman Collection JSON.
// Zonder baseURL wordt servers[0].url gebruikt. Retourneert de json-bytes en een bestandsnaam.
func (s *PostmanService) ConvertOpenAPIToPostman(oas []byte, baseURL string) ([]byte, string, error) {
	if len(strings.TrimSpace(string(oas))) == 0 {
		return nil, "", ErrEmptyOAS
	}
	js := oas
	if !json.Valid(oas) {
		j, err := yaml.YAMLToJSON(oas)
		if err != nil {
			return nil, "", fmt.Errorf("kan YAML niet naar JSON omzetten: %w", err)
		}
		js = j
	}

	doc, err := openapi.Load(js)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = doc.ServerURL()
	}

	col, err := s.Build(doc, baseURL)
	if err != nil {
		return nil, "", err
	}
	b, err := MarshalCollection(col)
	if err != nil {
		return nil, "", fmt.Errorf("kan collectie niet serialiseren: %w", err)
	}

	name := "postman-collection"
	if safe := SanitizeFilename(col.Info.Name); safe != "" && col.Info.Name != defaultCollectionName {
		name = safe
	}
	return b, name, nil
}

// Build zet een OpenAPI document om naar een collectie met één map per tag.
// baseURL vult de baseUrl variabele en wordt niet verder ingekort.
func (s *PostmanService) Build(doc *openapi.Document, baseURL string) (*models.PostmanCollection, error) {
	title, description, ok := doc.Info()
	if !ok {
		title = defaultCollectionName
	}

	col := &models.PostmanCollection{
		Info: models.PostmanInfo{
			PostmanID:   uuid.NewSHA1(uuid.NameSpaceURL, []byte(baseURL+"#"+title)).String(),
			Name:        title,
			Description: description,
			Schema:      models.PostmanSchemaURL,
		},
		Item: []*models.PostmanFolder{},
		Variable: []models.PostmanVariable{{
			Key:   "baseUrl",
			Value: baseURL,
			Type:  "string",
		}},
	}

	folders := orderedmap.New[string, *models.PostmanFolder]()
	requests := 0
	err := doc.Paths(func(path string, item openapi.PathItem) error {
		pathParams := item.Parameters()
		return item.Operations(func(method string, op openapi.Operation) error {
			entry := s.buildItem(doc, path, method, pathParams, op)
			requests++

			tags, ok := op.Tags()
			if !ok {
				tags = []string{s.defaultTag}
			}
			for _, tag := range tags {
				folder, found := folders.Get(tag)
				if !found {
					folder = &models.PostmanFolder{Name: tag, Item: []*models.PostmanItem{}}
					folders.Set(tag, folder)
				}
				folder.Item = append(folder.Item, entry)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("kan paths niet doorlopen: %w", err)
	}

	for pair := folders.Oldest(); pair != nil; pair = pair.Next() {
		col.Item = append(col.Item, pair.Value)
	}

	log.Info().
		Str("component", "postman").
		Str("collection", title).
		Int("folders", len(col.Item)).
		Int("requests", requests).
		Msg("collectie opgebouwd")
	return col, nil
}

func (s *PostmanService) buildItem(doc *openapi.Document, path, method string, pathParams []openapi.Parameter, op openapi.Operation) *models.PostmanItem {
	method = strings.ToUpper(method)
	name, ok := op.Summary()
	if !ok {
		name = method + " " + path
	}

	req := models.PostmanRequest{
		Method: method,
		Header: []models.PostmanParam{},
		URL: models.PostmanURL{
			Raw:  baseURLVariable + path,
			Host: []string{baseURLVariable},
			Path: pathSegments(path),
		},
	}

	// path-niveau eerst, daarna operatie-niveau; geen ontdubbeling op naam
	params := append(append([]openapi.Parameter{}, pathParams...), op.Parameters()...)
	for _, p := range params {
		entry := models.PostmanParam{Key: p.Name, Value: "", Description: p.Description}
		switch p.In {
		case "query":
			req.URL.Query = append(req.URL.Query, entry)
		case "header":
			req.Header = append(req.Header, entry)
		}
	}

	if rb, ok := op.RequestBody(); ok {
		req.Body = SynthesizeBody(doc, rb)
	}

	return &models.PostmanItem{
		Name:        name,
		Description: op.Description(),
		Request:     req,
		Response:    []any{},
	}
}

func pathSegments(path string) []string {
	segments := []string{}
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
