package services

import (
	"bytes"

	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/helper/openapi"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/models"
	json "github.com/goccy/go-json"
)

// standaardwaarden per JSON-Schema type; andere types krijgen geen waarde
var typeDefaults = map[string]string{
	"string":  `""`,
	"number":  `0`,
	"boolean": `false`,
	"array":   `[]`,
	"object":  `{}`,
}

// SynthesizeBody maakt een raw JSON body uit content["application/json"].schema.
// Geeft nil terug als er geen bruikbaar object schema is; dat is geen fout.
func SynthesizeBody(doc *openapi.Document, rb openapi.RequestBody) *models.PostmanBody {
	schema, ok := rb.JSONSchema()
	if !ok {
		return nil
	}
	schema = doc.Deref(schema)
	if schema.Type() != "object" || !schema.HasProperties() {
		return nil
	}

	example, fields := exampleObject(doc, schema)
	if fields == 0 {
		return nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, example, "", "  "); err != nil {
		return nil
	}
	return &models.PostmanBody{
		Mode: "raw",
		Raw:  out.String(),
		Options: &models.PostmanBodyOptions{
			Raw: models.PostmanRawOptions{Language: "json"},
		},
	}
}

// exampleObject bouwt een compact JSON object in property-volgorde
func exampleObject(doc *openapi.Document, schema openapi.Schema) ([]byte, int) {
	var buf bytes.Buffer
	fields := 0
	buf.WriteByte('{')
	_ = schema.Properties(func(name string, prop openapi.Schema) error {
		value, ok := exampleValue(doc.Deref(prop))
		if !ok {
			return nil
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil
		}
		if fields > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
		fields++
		return nil
	})
	buf.WriteByte('}')
	return buf.Bytes(), fields
}

func exampleValue(prop openapi.Schema) ([]byte, bool) {
	if example, ok := prop.Example(); ok {
		return example, true
	}
	if def, ok := typeDefaults[prop.Type()]; ok {
		return []byte(def), true
	}
	return nil, false
}
