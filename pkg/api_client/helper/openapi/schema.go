package openapi

import (
	"strings"

	"github.com/buger/jsonparser"
)

// Schema is een JSON-Schema fragment. De nulwaarde is het lege schema.
type Schema struct {
	raw []byte
}

// IsEmpty meldt of het schema geen velden bevat
func (s Schema) IsEmpty() bool {
	empty := true
	_ = jsonparser.ObjectEach(s.raw, func(_, _ []byte, _ jsonparser.ValueType, _ int) error {
		empty = false
		return nil
	})
	return empty
}

// Ref geeft de $ref van het schema, of "" als die ontbreekt
func (s Schema) Ref() string {
	ref, _ := getString(s.raw, "$ref")
	return ref
}

func (s Schema) Type() string {
	t, _ := getString(s.raw, "type")
	return t
}

// Example geeft de example waarde als JSON; null telt als aanwezig.
func (s Schema) Example() ([]byte, bool) {
	value, dataType, _, err := jsonparser.Get(s.raw, "example")
	if err != nil {
		return nil, false
	}
	return rawJSON(value, dataType), true
}

// HasProperties meldt of er een properties object is (ook als het leeg is)
func (s Schema) HasProperties() bool {
	_, dataType, _, err := jsonparser.Get(s.raw, "properties")
	return err == nil && dataType == jsonparser.Object
}

// Properties loopt de properties af in documentvolgorde
func (s Schema) Properties(fn func(name string, prop Schema) error) error {
	return eachObject(s.raw, func(key string, value []byte, dataType jsonparser.ValueType) error {
		if dataType != jsonparser.Object {
			return fn(key, Schema{})
		}
		return fn(key, Schema{raw: value})
	}, "properties")
}

// ResolveSchema zoekt het laatste segment van ref op in components.schemas.
// Een ontbrekend of onbekend schema levert het lege schema op, nooit een fout.
func (d *Document) ResolveSchema(ref string) Schema {
	name := ref
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		name = ref[i+1:]
	}
	if name == "" {
		return Schema{}
	}
	value, dataType, _, err := jsonparser.Get(d.raw, "components", "schemas", name)
	if err != nil || dataType != jsonparser.Object {
		return Schema{}
	}
	return Schema{raw: value}
}

// Deref lost een $ref in s precies één keer op; zonder $ref komt s ongewijzigd terug.
func (d *Document) Deref(s Schema) Schema {
	ref := s.Ref()
	if ref == "" {
		return s
	}
	return d.ResolveSchema(ref)
}
