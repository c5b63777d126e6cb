package req

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

// Decode читает JSON тело запроса в T и проверяет теги validate
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode request: %w", err)
	}

	if err := validate.Struct(payload); err != nil {
		return payload, fmt.Errorf("invalid request: %w", err)
	}

	return payload, nil
}
