package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var records = validator.New()

// FieldError describes one rejected field of a seed record
type FieldError struct {
	Field   string
	Tag     string
	Value   interface{}
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// ValidateRecord checks a seed record against its validate tags and returns
// one FieldError per failing field.
func ValidateRecord(record interface{}) []FieldError {
	err := records.Struct(record)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Tag:     fe.Tag(),
			Value:   fe.Value(),
			Message: fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()),
		})
	}
	return out
}
