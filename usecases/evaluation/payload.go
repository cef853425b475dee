package evaluation

import (
	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/lgu-seal/sglgb-backend/models"
)

// ParseResponsePayload turns a raw submission document into the value bag the
// evaluator consumes. The payload is a flat JSON object keyed by checklist
// item id: {"item_1": true, "item_2": 600000, "item_3": "2024-06-01"}.
//
// Values keep their JSON type; date strings stay strings and are interpreted
// by the evaluator. Null fields are dropped, which makes them
// indistinguishable from missing fields on purpose.
func ParseResponsePayload(payload []byte) (map[string]any, error) {
	if len(payload) == 0 {
		return map[string]any{}, nil
	}
	if !gjson.ValidBytes(payload) {
		return nil, errors.Wrap(models.BadParameterError, "response payload is not valid JSON")
	}

	parsed := gjson.ParseBytes(payload)
	if !parsed.IsObject() {
		return nil, errors.Wrap(models.BadParameterError, "response payload must be a JSON object")
	}

	responses := make(map[string]any)
	parsed.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.True, gjson.False:
			responses[key.String()] = value.Bool()
		case gjson.Number:
			responses[key.String()] = value.Float()
		case gjson.String:
			responses[key.String()] = value.String()
		case gjson.JSON:
			if value.IsArray() {
				values := make([]string, 0, len(value.Array()))
				for _, element := range value.Array() {
					values = append(values, element.String())
				}
				responses[key.String()] = values
			}
		}
		return true
	})
	return responses, nil
}
