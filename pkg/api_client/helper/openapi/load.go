package openapi

import (
	stdjson "encoding/json"
	"errors"

	"github.com/buger/jsonparser"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// swaggerDocKey is de wrapper die Swagger-UI om het eigenlijke document zet
const swaggerDocKey = "swaggerDoc"

// Load parseert genormaliseerde JSON strikt en pakt een eventuele swaggerDoc wrapper uit.
func Load(normalized []byte) (*Document, error) {
	if err := checkStrict(normalized); err != nil {
		offset := int64(-1)
		var syntaxErr *stdjson.SyntaxError
		if errors.As(err, &syntaxErr) {
			offset = syntaxErr.Offset
		}
		perr := newParseError(normalized, offset, err)
		log.Error().
			Str("component", "openapi").
			Int64("offset", perr.Offset).
			Str("context", perr.Context).
			Err(err).
			Msg("JSON fout in options object")
		return nil, perr
	}

	var parsed any
	if err := json.Unmarshal(normalized, &parsed); err != nil {
		return nil, newParseError(normalized, -1, err)
	}
	root, ok := parsed.(map[string]any)
	if !ok {
		return &Document{raw: normalized}, nil
	}
	if _, wrapped := root[swaggerDocKey]; !wrapped {
		return &Document{raw: normalized}, nil
	}
	value, dataType, _, err := jsonparser.Get(normalized, swaggerDocKey)
	if err != nil {
		return nil, newParseError(normalized, -1, err)
	}
	return &Document{raw: rawJSON(value, dataType)}, nil
}

// checkStrict laat alleen RFC 8259 JSON door; go-json accepteert ook voorloopnullen
// en ruwe control characters in strings.
func checkStrict(data []byte) error {
	var raw stdjson.RawMessage
	return stdjson.Unmarshal(data, &raw)
}

// rawJSON zet de waarde van jsonparser terug om naar geldige JSON; strings komen zonder quotes terug.
func rawJSON(value []byte, dataType jsonparser.ValueType) []byte {
	if dataType != jsonparser.String {
		return value
	}
	out := make([]byte, 0, len(value)+2)
	out = append(out, '"')
	out = append(out, value...)
	return append(out, '"')
}
