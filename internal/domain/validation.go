package domain

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxOwnerNameLength = 14
	MaxStoreNameLength = 19
	CPFLength          = 11
	CardNumberLength   = 12
)

var (
	cpfPattern        = regexp.MustCompile(`^\d{11}$`)
	cardNumberPattern = regexp.MustCompile(`^[\d*]{12}$`)
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ValidationError struct {
	Entity Entity       `json:"entity"`
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "invalid " + string(e.Entity) + ": " + strings.Join(msgs, "; ")
}

// HasField reports whether any rule failed for the given field.
func (e *ValidationError) HasField(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

type validator struct {
	entity Entity
	errs   []FieldError
}

func newValidator(entity Entity) *validator {
	return &validator{entity: entity}
}

func (v *validator) add(field, rule, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Rule: rule, Message: message})
}

func (v *validator) requiredMaxLength(field, value string, max int) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "required", field+" is required")
		return
	}
	if utf8.RuneCountInString(value) > max {
		v.add(field, "max_length", field+" must be at most "+strconv.Itoa(max)+" characters")
	}
}

func (v *validator) cpf(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "required", field+" is required")
		return
	}
	if !cpfPattern.MatchString(value) {
		v.add(field, "format", field+" must be exactly 11 digits")
	}
}

func (v *validator) cardNumber(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "required", field+" is required")
		return
	}
	if !cardNumberPattern.MatchString(value) {
		v.add(field, "format", field+" must be exactly 12 digits or mask characters")
	}
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return &ValidationError{Entity: v.entity, Errors: v.errs}
}
