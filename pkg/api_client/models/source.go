package models

// CollectionSource beschrijft een Swagger-UI waarvan periodiek een collectie wordt gemaakt
// - URL: basis URL van de Swagger-UI (bijv. https://api.example.com/docs)
// - SwaggerPath: optioneel; standaard "swagger-ui-init.js"
// - Output: optioneel; standaard "<eerste DNS label>_collection.json"
type CollectionSource struct {
	URL         string `json:"url"`
	SwaggerPath string `json:"swaggerPath,omitempty"`
	Output      string `json:"output,omitempty"`
}
