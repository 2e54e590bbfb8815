package dto

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notnull", notNullJSON)
	}
}

// notNullJSON rejects raw JSON fields that are present but carry the
// literal null. A required check alone lets "field": null through
// because the raw bytes are non-empty.
func notNullJSON(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(json.RawMessage)
	if !ok {
		return true
	}
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
