// Package validate normalizes and checks contact-form input.
package validate

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/omkarinteriors/backend/internal/model"
)

const (
	minNameLength    = 2
	maxNameLength    = 200
	minMessageLength = 5
	maxMessageLength = 5000
	maxPhoneLength   = 50
)

// emailPattern is a deliberately permissive syntactic check
// (local@domain.tld), not full RFC validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Input is the untyped contact-form payload before validation. Each
// field is coerced to a string on decode, so a numeric or boolean JSON
// value becomes its literal rendering and null becomes empty; only the
// field rules decide validity.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Phone   string `json:"phone"`
}

// UnmarshalJSON decodes each field loosely and coerces it to a string.
func (in *Input) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name    json.RawMessage `json:"name"`
		Email   json.RawMessage `json:"email"`
		Message json.RawMessage `json:"message"`
		Phone   json.RawMessage `json:"phone"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	in.Name = coerceString(raw.Name)
	in.Email = coerceString(raw.Email)
	in.Message = coerceString(raw.Message)
	in.Phone = coerceString(raw.Phone)
	return nil
}

// coerceString renders a JSON value as a string: strings decode as
// usual, absent and null become empty, and anything else keeps its
// literal JSON text.
func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// Validate trims and checks every field independently and returns either
// a normalized Inquiry or the full list of field errors. It never stops
// at the first failure.
func Validate(in Input) (model.Inquiry, []model.FieldError) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)
	phone := strings.TrimSpace(in.Phone)

	var errs []model.FieldError
	if n := len([]rune(name)); n < minNameLength || n > maxNameLength {
		errs = append(errs, model.FieldError{Path: "name", Msg: "Invalid name"})
	}
	if !emailPattern.MatchString(email) {
		errs = append(errs, model.FieldError{Path: "email", Msg: "Invalid email"})
	}
	if n := len([]rune(message)); n < minMessageLength || n > maxMessageLength {
		errs = append(errs, model.FieldError{Path: "message", Msg: "Invalid message"})
	}
	if phone != "" && len([]rune(phone)) > maxPhoneLength {
		errs = append(errs, model.FieldError{Path: "phone", Msg: "Invalid phone"})
	}
	if len(errs) > 0 {
		return model.Inquiry{}, errs
	}

	return model.Inquiry{
		Name:    name,
		Email:   email,
		Message: message,
		Phone:   phone,
	}, nil
}
