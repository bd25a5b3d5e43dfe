// Package swaggerui haalt het OpenAPI document uit het bootstrap script van Swagger-UI.
package swaggerui

import (
	"regexp"

	"github.com/rs/zerolog/log"
)

// DefaultScriptPath is het standaard pad van het Swagger-UI bootstrap script
const DefaultScriptPath = "swagger-ui-init.js"

// kortste match tot de eerstvolgende `;` gevolgd door let, url of window
var optionsRe = regexp.MustCompile(`\boptions\s*=\s*(\{[\s\S]*?)\s*;\s*(?:let|url|window)`)

// Extract zoekt de `options = {...}` toewijzing in het script en geeft het
// genormaliseerde object terug. Het resultaat is bedoeld voor openapi.Load.
func Extract(script []byte) ([]byte, error) {
	m := optionsRe.FindSubmatch(script)
	if m == nil {
		return nil, &ExtractionError{Size: len(script)}
	}
	normalized := Normalize(string(m[1]))
	log.Debug().
		Str("component", "swaggerui").
		Int("raw", len(m[1])).
		Int("normalized", len(normalized)).
		Msg("options object geëxtraheerd")
	return []byte(normalized), nil
}
