package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/qri-io/jsonschema"
)

// Request body schemas. Bodies are validated against these before any
// decoding or business logic runs, so malformed, mistyped or unknown fields
// fail fast with a 400 and never reach the store.

const recordSchemaJSON = `{
	"type": "object",
	"required": ["user_id", "date", "fatigue"],
	"properties": {
		"user_id": {"type": "string", "minLength": 1},
		"date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
		"fatigue": {"type": "integer"},
		"notes": {"type": ["string", "null"]}
	},
	"additionalProperties": false
}`

const analyzeSchemaJSON = `{
	"type": "object",
	"properties": {
		"range": {"type": "string"},
		"from": {"type": "string"},
		"to": {"type": "string"},
		"user_id": {"type": "string"}
	},
	"additionalProperties": false
}`

const chatSchemaJSON = `{
	"type": "object",
	"required": ["message"],
	"properties": {
		"message": {"type": "string"},
		"user": {"type": "string"}
	},
	"additionalProperties": false
}`

var (
	recordSchema  = mustSchema(recordSchemaJSON)
	analyzeSchema = mustSchema(analyzeSchemaJSON)
	chatSchema    = mustSchema(chatSchemaJSON)
)

func mustSchema(raw string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(raw), rs); err != nil {
		panic(fmt.Sprintf("invalid request schema: %v", err))
	}
	return rs
}

// decodeValid reads a JSON body, validates it against schema and unmarshals
// it into dst. The body is capped at 64KB.
func decodeValid(ctx context.Context, body io.Reader, schema *jsonschema.Schema, dst any) error {
	const maxSize = 64 * 1024
	raw, err := io.ReadAll(io.LimitReader(body, maxSize+1))
	if err != nil {
		return fmt.Errorf("read body failed")
	}
	if len(raw) > maxSize {
		return fmt.Errorf("request body too large")
	}
	if !json.Valid(raw) {
		return fmt.Errorf("invalid json")
	}

	errs, err := schema.ValidateBytes(ctx, raw)
	if err != nil {
		return fmt.Errorf("invalid request: %v", err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid request: %s", errs[0].Error())
	}

	return json.Unmarshal(raw, dst)
}
