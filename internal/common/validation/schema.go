// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Validation error codes.
const (
	CodeRequiredFieldMissing = "REQUIRED_FIELD_MISSING"
	CodeExtraField           = "EXTRA_FIELD"
	CodeInvalidType          = "INVALID_TYPE"
	CodeMinLengthViolation   = "MIN_LENGTH_VIOLATION"
	CodeMaxLengthViolation   = "MAX_LENGTH_VIOLATION"
	CodePatternMismatch      = "PATTERN_MISMATCH"
	CodeInvalidEnumValue     = "INVALID_ENUM_VALUE"
	CodeMinimumViolation     = "MINIMUM_VIOLATION"
	CodeMaximumViolation     = "MAXIMUM_VIOLATION"
	CodeDuplicateItem        = "DUPLICATE_ITEM"
	CodeSchemaViolation      = "SCHEMA_VIOLATION"
	CodeInvalidSchema        = "INVALID_SCHEMA"
)

// gojsonschema error types mapped to validation codes. Anything else is
// reported as CodeSchemaViolation.
var errorCodes = map[string]string{
	"required":                        CodeRequiredFieldMissing,
	"additional_property_not_allowed": CodeExtraField,
	"invalid_type":                    CodeInvalidType,
	"string_gte":                      CodeMinLengthViolation,
	"string_lte":                      CodeMaxLengthViolation,
	"pattern":                         CodePatternMismatch,
	"enum":                            CodeInvalidEnumValue,
	"number_gte":                      CodeMinimumViolation,
	"number_lte":                      CodeMaximumViolation,
	"unique":                          CodeDuplicateItem,
}

// JSONSchema describes a worker input object. It marshals to a JSON Schema
// document.
type JSONSchema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties bool                `json:"additionalProperties"`
}

type Property struct {
	Type        string              `json:"type,omitempty"`
	Description string              `json:"description,omitempty"`
	Default     interface{}         `json:"default,omitempty"`
	Minimum     *float64            `json:"minimum,omitempty"`
	Maximum     *float64            `json:"maximum,omitempty"`
	Enum        []string            `json:"enum,omitempty"`
	Pattern     *string             `json:"pattern,omitempty"`
	MinLength   *int                `json:"minLength,omitempty"`
	MaxLength   *int                `json:"maxLength,omitempty"`
	UniqueItems bool                `json:"uniqueItems,omitempty"`
	Items       *Property           `json:"items,omitempty"`
	Properties  map[string]Property `json:"properties,omitempty"`
	Required    []string            `json:"required,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Compile turns schema into a reusable gojsonschema validator.
func Compile(schema JSONSchema) (*gojsonschema.Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return compiled, nil
}

// ValidateInput checks input against schema.
func ValidateInput(input map[string]interface{}, schema JSONSchema) *ValidationResult {
	compiled, err := Compile(schema)
	if err != nil {
		return invalid(ValidationError{Field: "(schema)", Message: err.Error(), Code: CodeInvalidSchema})
	}
	return validateCompiled(compiled, input)
}

// validateCompiled runs a compiled schema. Explicit nulls count as
// unanswered. Errors are sorted by field so the list is stable.
func validateCompiled(schema *gojsonschema.Schema, input map[string]interface{}) *ValidationResult {
	answered := make(map[string]interface{}, len(input))
	for name, value := range input {
		if value != nil {
			answered[name] = value
		}
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(answered))
	if err != nil {
		return invalid(ValidationError{Field: "(root)", Message: err.Error(), Code: CodeInvalidType})
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		code, ok := errorCodes[desc.Type()]
		if !ok {
			code = CodeSchemaViolation
		}
		errs = append(errs, ValidationError{
			Field:   fieldOf(desc),
			Message: desc.Description(),
			Code:    code,
		})
	}
	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].Field < errs[j].Field
	})

	return &ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

func invalid(e ValidationError) *ValidationResult {
	return &ValidationResult{Valid: false, Errors: []ValidationError{e}}
}

// fieldOf renders the error location as name, parent.child or list[i].
func fieldOf(desc gojsonschema.ResultError) string {
	parts := strings.Split(desc.Field(), ".")
	if len(parts) == 1 && parts[0] == gojsonschema.STRING_CONTEXT_ROOT {
		parts = nil
	}
	// required and additional property errors point at the parent object.
	if property, ok := desc.Details()["property"].(string); ok {
		parts = append(parts, property)
	}

	var b strings.Builder
	for _, part := range parts {
		if _, err := strconv.Atoi(part); err == nil && b.Len() > 0 {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(part)
	}
	return b.String()
}


var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern    = regexp.MustCompile(`^\+?[\d\s\-\(\)]{10,}$`)
	taskTypePattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)+$`)
)

// ValidateTaskType checks the verb-noun task type format, e.g. rank-careers.
func ValidateTaskType(taskType string) error {
	if !taskTypePattern.MatchString(taskType) {
		return fmt.Errorf("task type %q must be lower-case words joined by hyphens (e.g. rank-careers)", taskType)
	}
	return nil
}

func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// GetErrorsForField returns errors for field and its items or nested fields.
func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var out []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") || strings.HasPrefix(err.Field, field+"[") {
			out = append(out, err)
		}
	}
	return out
}

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone accepts E.164-like numbers with optional separators.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
