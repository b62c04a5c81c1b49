package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"butler/internal/domain"
)

// snapshotSchema is the shape contract with the catalog backend. A payload
// that fails validation counts as a fetch failure, same as a network error.
const snapshotSchema = `{
  "type": "object",
  "required": ["hotel"],
  "properties": {
    "hotel": {
      "type": "object",
      "required": ["services"],
      "properties": {
        "name": {"type": "string"},
        "services": {"type": "array", "items": {"$ref": "#/definitions/service"}}
      }
    },
    "restaurants": {"type": "array", "items": {"$ref": "#/definitions/service"}},
    "spa_services": {"type": "array", "items": {"$ref": "#/definitions/service"}},
    "attractions": {"type": "array", "items": {"$ref": "#/definitions/service"}}
  },
  "definitions": {
    "service": {
      "type": "object",
      "properties": {
        "id": {"type": "string"},
        "name": {"type": "string"},
        "description": {"type": "string"},
        "price": {"type": ["number", "null"]},
        "duration": {"type": ["integer", "null"]},
        "vendor": {"type": "string"},
        "location": {"type": "string"},
        "type": {"type": "string"},
        "cuisine": {"type": "string"},
        "menu": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "item": {"type": "string"},
              "price": {"type": "string"},
              "description": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

var compiledSchema = gojsonschema.NewStringLoader(snapshotSchema)

// Parse validates a raw catalog document and decodes it into a snapshot.
func Parse(body []byte) (domain.CatalogSnapshot, error) {
	res, err := gojsonschema.Validate(compiledSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("catalog payload: %w", err)
	}
	if !res.Valid() {
		return domain.CatalogSnapshot{}, fmt.Errorf("catalog payload invalid: %s", res.Errors()[0])
	}
	var snap domain.CatalogSnapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return domain.CatalogSnapshot{}, err
	}
	return snap, nil
}
