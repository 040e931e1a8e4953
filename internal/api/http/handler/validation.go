package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/dracula-tv/media-backend/internal/api/http/response"
)

var registerOnce sync.Once

// RegisterValidation makes validation errors report JSON field names.
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

// respondBindError reports a failed ShouldBind call.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		response.FieldErrors(c, http.StatusBadRequest, "invalid request", fields)
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		response.FieldErrors(c, http.StatusBadRequest, "invalid request",
			map[string]string{typeErr.Field: fmt.Sprintf("Expected a %s.", typeErr.Type)})
		return
	}

	response.Error(c, http.StatusBadRequest, response.CodeValidation, "invalid json")
}

// validateVar checks a value bound outside of struct tags and reports it under field.
func validateVar(c *gin.Context, field string, value any, rules string) bool {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return true
	}

	var verrs validator.ValidationErrors
	if err := v.Var(value, rules); errors.As(err, &verrs) && len(verrs) > 0 {
		response.FieldErrors(c, http.StatusBadRequest, "invalid request",
			map[string]string{field: fieldMessage(verrs[0])})
		return false
	}

	return true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url", "http_url":
		return "Enter a valid URL."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return "Invalid value."
	}
}
