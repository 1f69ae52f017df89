package results

import "github.com/xeipuuv/gojsonschema"

// documentSchema declares the expected document shape. Validation is
// advisory: a failing document still goes through the lenient normalizer,
// but the first violation is surfaced as a warning notice.
const documentSchema = `{
  "type": "object",
  "required": ["eval_results"],
  "properties": {
    "eval_results": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": {
          "type": "object",
          "additionalProperties": {
            "type": ["object", "null"],
            "properties": {
              "total": {"type": "number"},
              "correct": {"type": "number"},
              "accuracy_percent": {"type": "number"},
              "by_answer_type": {"type": ["object", "null"]},
              "model": {"type": "string"},
              "val_json": {"type": "string"},
              "mode": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

// ValidateDocument checks raw bytes against the document schema and returns
// whether they conform plus the first violation message.
func ValidateDocument(raw []byte) (bool, string) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return false, err.Error()
	}
	if result.Valid() {
		return true, ""
	}
	if errs := result.Errors(); len(errs) > 0 {
		return false, errs[0].String()
	}
	return false, "document does not match the expected shape"
}
