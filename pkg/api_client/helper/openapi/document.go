// Package openapi biedt een lees-model over een OpenAPI document dat de volgorde
// van het bronbestand volgt (paths, methodes, properties).
package openapi

import (
	"errors"

	"github.com/buger/jsonparser"
)

// Document is een OpenAPI document als ruwe JSON. Alle iteratie volgt de documentvolgorde.
type Document struct {
	raw []byte
}

// NewDocument verpakt reeds gevalideerde JSON
func NewDocument(raw []byte) *Document {
	return &Document{raw: raw}
}

// Raw geeft de JSON bytes van het document terug
func (d *Document) Raw() []byte { return d.raw }

// Info geeft titel en beschrijving; ontbrekende velden zijn leeg.
func (d *Document) Info() (title, description string, hasTitle bool) {
	title, err := getString(d.raw, "info", "title")
	hasTitle = err == nil
	description, _ = getString(d.raw, "info", "description")
	return title, description, hasTitle
}

// ServerURL geeft servers[0].url, of "" als die ontbreekt
func (d *Document) ServerURL() string {
	u, _ := getString(d.raw, "servers", "[0]", "url")
	return u
}

// Paths loopt alle path items af in documentvolgorde
func (d *Document) Paths(fn func(path string, item PathItem) error) error {
	return eachObject(d.raw, func(key string, value []byte, dataType jsonparser.ValueType) error {
		if dataType != jsonparser.Object {
			return nil
		}
		return fn(key, PathItem{raw: value})
	}, "paths")
}

// PathItem is één entry onder `paths`
type PathItem struct {
	raw []byte
}

// Parameters geeft de parameters op path-niveau
func (p PathItem) Parameters() []Parameter {
	return parameters(p.raw)
}

// Operations loopt de methodes af; de `parameters` sibling wordt overgeslagen.
func (p PathItem) Operations(fn func(method string, op Operation) error) error {
	return eachObject(p.raw, func(key string, value []byte, dataType jsonparser.ValueType) error {
		if key == "parameters" || dataType != jsonparser.Object {
			return nil
		}
		return fn(key, Operation{raw: value})
	})
}

// Operation is één methode onder een path item
type Operation struct {
	raw []byte
}

func (o Operation) Summary() (string, bool) {
	s, err := getString(o.raw, "summary")
	return s, err == nil
}

func (o Operation) Description() string {
	s, _ := getString(o.raw, "description")
	return s
}

// Tags geeft de tags van de operatie; ok is false als het veld ontbreekt.
func (o Operation) Tags() (tags []string, ok bool) {
	_, dataType, _, err := jsonparser.Get(o.raw, "tags")
	if err != nil || dataType != jsonparser.Array {
		return nil, false
	}
	tags = []string{}
	_, _ = jsonparser.ArrayEach(o.raw, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
		if dt != jsonparser.String {
			return
		}
		if s, err := jsonparser.ParseString(value); err == nil {
			tags = append(tags, s)
		}
	}, "tags")
	return tags, true
}

func (o Operation) Parameters() []Parameter {
	return parameters(o.raw)
}

// RequestBody geeft het requestBody object, indien aanwezig
func (o Operation) RequestBody() (RequestBody, bool) {
	value, dataType, _, err := jsonparser.Get(o.raw, "requestBody")
	if err != nil || dataType != jsonparser.Object {
		return RequestBody{}, false
	}
	return RequestBody{raw: value}, true
}

// RequestBody is het requestBody object van een operatie
type RequestBody struct {
	raw []byte
}

// JSONSchema geeft content["application/json"].schema
func (b RequestBody) JSONSchema() (Schema, bool) {
	value, dataType, _, err := jsonparser.Get(b.raw, "content", "application/json", "schema")
	if err != nil || dataType != jsonparser.Object {
		return Schema{}, false
	}
	return Schema{raw: value}, true
}

// Parameter bevat de velden die voor de collectie nodig zijn
type Parameter struct {
	Name        string
	In          string
	Description string
}

func parameters(raw []byte) []Parameter {
	var out []Parameter
	_, _ = jsonparser.ArrayEach(raw, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if dataType != jsonparser.Object {
			return
		}
		name, _ := getString(value, "name")
		in, _ := getString(value, "in")
		desc, _ := getString(value, "description")
		out = append(out, Parameter{Name: name, In: in, Description: desc})
	}, "parameters")
	return out
}

func getString(raw []byte, keys ...string) (string, error) {
	value, dataType, _, err := jsonparser.Get(raw, keys...)
	if err != nil {
		return "", err
	}
	if dataType != jsonparser.String {
		return "", errors.New("geen string")
	}
	return jsonparser.ParseString(value)
}

func eachObject(raw []byte, fn func(key string, value []byte, dataType jsonparser.ValueType) error, keys ...string) error {
	_, dataType, _, err := jsonparser.Get(raw, keys...)
	if err != nil || dataType != jsonparser.Object {
		return nil
	}
	return jsonparser.ObjectEach(raw, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
		k, err := jsonparser.ParseString(key)
		if err != nil {
			k = string(key)
		}
		return fn(k, value, dt)
	}, keys...)
}
