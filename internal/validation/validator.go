// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/cloudcompass/cloudcompass/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator instance. The instance caches
// struct metadata internally, so a single instance must be reused across
// requests.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report the json tag name rather than the Go field name.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ValidationError describes a single failed constraint on one field.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// RequestValidationError aggregates all field failures for one request.
type RequestValidationError struct {
	Errors []ValidationError
}

func (e *RequestValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToAPIError converts the aggregate into the response envelope error shape.
func (e *RequestValidationError) ToAPIError() *models.APIError {
	details := make(map[string]interface{}, len(e.Errors))
	for _, fe := range e.Errors {
		details[fe.Field] = fe.Message
	}
	return &models.APIError{
		Code:    "VALIDATION_ERROR",
		Message: "request validation failed",
		Details: details,
	}
}

// ValidateStruct runs the shared validator against s and returns a
// *RequestValidationError carrying per-field messages, or nil when valid.
func ValidateStruct(s interface{}) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError and friends. Surface as a single opaque
		// failure rather than panicking on a malformed input type.
		return &RequestValidationError{Errors: []ValidationError{{
			Field:   "request",
			Tag:     "invalid",
			Message: "request could not be validated",
		}}}
	}

	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fmt.Sprintf("%v", fe.Value()),
			Message: translateError(fe),
		})
	}
	return &RequestValidationError{Errors: out}
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"min":      "%s must be at least %s",
	"max":      "%s must be at most %s",
	"gte":      "%s must be greater than or equal to %s",
	"lte":      "%s must be less than or equal to %s",
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "oneof":
		choices := strings.Join(strings.Fields(fe.Param()), ", ")
		return fmt.Sprintf("%s must be one of: %s", field, choices)
	}

	if tmpl, ok := errorMessageTemplates[fe.Tag()]; ok {
		if strings.Count(tmpl, "%s") == 2 {
			return fmt.Sprintf(tmpl, field, fe.Param())
		}
		return fmt.Sprintf(tmpl, field)
	}

	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
