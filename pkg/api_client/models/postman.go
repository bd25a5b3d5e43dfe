package models

// PostmanSchemaURL identificeert het Postman Collection v2.1 formaat
const PostmanSchemaURL = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// PostmanCollection is de root van een Postman v2.1 collectie
type PostmanCollection struct {
	Info     PostmanInfo       `json:"info"`
	Item     []*PostmanFolder  `json:"item"`
	Variable []PostmanVariable `json:"variable"`
}

type PostmanInfo struct {
	PostmanID   string `json:"_postman_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Schema      string `json:"schema"`
}

type PostmanVariable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// PostmanFolder groepeert de requests van één tag
type PostmanFolder struct {
	Name string         `json:"name"`
	Item []*PostmanItem `json:"item"`
}

// PostmanItem is één request in de collectie
type PostmanItem struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Request     PostmanRequest `json:"request"`
	Response    []any          `json:"response"`
}

type PostmanRequest struct {
	Method string         `json:"method"`
	Header []PostmanParam `json:"header"`
	URL    PostmanURL     `json:"url"`
	Body   *PostmanBody   `json:"body,omitempty"`
}

type PostmanURL struct {
	Raw   string         `json:"raw"`
	Host  []string       `json:"host"`
	Path  []string       `json:"path"`
	Query []PostmanParam `json:"query,omitempty"`
}

// PostmanParam wordt gebruikt voor zowel query parameters als headers
type PostmanParam struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type PostmanBody struct {
	Mode    string              `json:"mode"`
	Raw     string              `json:"raw"`
	Options *PostmanBodyOptions `json:"options,omitempty"`
}

type PostmanBodyOptions struct {
	Raw PostmanRawOptions `json:"raw"`
}

type PostmanRawOptions struct {
	Language string `json:"language"`
}

// ConvertOptions zijn de instelbare standaardwaarden van de conversie
type ConvertOptions struct {
	SwaggerPath string
	DefaultTag  string
}
