package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strings"
	"unicode"
)

// Kind is the closed set of failures the services can report.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindPersistence
	KindInternal
)

const (
	TypeValidation = "validation_error"
	TypeBadRequest = "bad_request"
	TypeInternal   = "internal_error"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int

	// Kind tells which failure this response represents.
	Kind() Kind
}

type APIError struct {
	StatusCode int    `json:"statusCode"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	kind       Kind
}

func (a *APIError) Code() int {
	return a.StatusCode
}

func (a *APIError) Kind() Kind {
	return a.kind
}

type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type StructuredError struct {
	StatusCode int            `json:"statusCode"`
	Type       string         `json:"type"`
	Errors     []FieldProblem `json:"errors"`
}

func (s *StructuredError) Code() int {
	return s.StatusCode
}

func (s *StructuredError) Kind() Kind {
	return KindValidation
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors = append(s.Errors, FieldProblem{Field: field, Message: problem})
}

// MissingDocumentTypesError lists every requested document type name that does
// not exist.
type MissingDocumentTypesError struct {
	Names []string
}

func (m *MissingDocumentTypesError) Code() int {
	return http.StatusBadRequest
}

func (m *MissingDocumentTypesError) Kind() Kind {
	return KindValidation
}

func (m *MissingDocumentTypesError) Message() string {
	return "Some of the provided document types were not found. Missing documents: " + strings.Join(m.Names, ", ")
}

func (m *MissingDocumentTypesError) MarshalJSON() ([]byte, error) {
	s := NewStructured(http.StatusBadRequest)
	s.Add("docsType", m.Message())
	return json.Marshal(s)
}

// FieldSchemaError reports a submission that does not match the document type
// schema. Both lists are reported together.
type FieldSchemaError struct {
	Missing []string
	Unknown []string
}

func (f *FieldSchemaError) Code() int {
	return http.StatusBadRequest
}

func (f *FieldSchemaError) Kind() Kind {
	return KindValidation
}

func (f *FieldSchemaError) Message() string {
	var parts []string
	if len(f.Missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(f.Missing, ", "))
	}
	if len(f.Unknown) > 0 {
		parts = append(parts, "Unknown fields provided: "+strings.Join(f.Unknown, ", "))
	}
	return strings.Join(parts, " | ")
}

func (f *FieldSchemaError) MarshalJSON() ([]byte, error) {
	s := NewStructured(http.StatusBadRequest)
	s.Add("docType.fields", f.Message())
	return json.Marshal(s)
}

var (
	MalformedBodyError  = NewBadRequest("Malformed JSON body")
	InternalServerError = &APIError{StatusCode: http.StatusInternalServerError, Type: TypeInternal, Message: "Something went wrong", kind: KindInternal}
	NotFoundError       = NewNotFound("Resource not found")
	InvalidIDError      = NewBadRequest("The provided ID is invalid, IDs are integers > 0")

	EmployeeCPFTakenError      = NewConflict("There is already an employee with this CPF registered")
	DocumentTypeNameTakenError = NewConflict("There is already an Document with this name registered")
)

// Message extracts the human readable message of any error response.
func Message(resp ErrorResponse) string {
	switch e := resp.(type) {
	case *APIError:
		return e.Message
	case *MissingDocumentTypesError:
		return e.Message()
	case *FieldSchemaError:
		return e.Message()
	case *StructuredError:
		msgs := make([]string, len(e.Errors))
		for i, p := range e.Errors {
			msgs[i] = p.Field + ": " + p.Message
		}
		return strings.Join(msgs, "; ")
	default:
		return ""
	}
}

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := NewStructured(http.StatusBadRequest)
	for _, fe := range ve {
		field := fieldPath(fe.Namespace())

		switch fe.Tag() {
		case "required":
			problems.Add(field, "This field is required")
		case "required_without", "excluded_with":
			problems.Add(field, "Exactly one of employeeId or employeeCpf must be provided")
		case "min":
			problems.Add(field, "Value is too short, min: "+fe.Param())
		case "max":
			problems.Add(field, "Value is too long, max: "+fe.Param())
		case "gt":
			problems.Add(field, "Value must be greater than "+fe.Param())
		case "cpf":
			problems.Add(field, "Invalid CPF")
		case "datebr":
			problems.Add(field, "Invalid date. The field must be in DD/MM/YYYY format")
		case "nodupes", "unique":
			problems.Add(field, "Values must not repeat")

		default:
			problems.Add(field, "Invalid value provided")
		}
	}
	return problems
}

// fieldPath drops struct names from a validator namespace, so
// "SendDocumentRequest.EmployeeRef.employeeCpf" becomes "employeeCpf".
func fieldPath(namespace string) string {
	segments := strings.Split(namespace, ".")
	kept := segments[:0]
	for _, seg := range segments {
		if seg != "" && unicode.IsUpper(rune(seg[0])) {
			continue
		}
		kept = append(kept, seg)
	}
	if len(kept) == 0 {
		return namespace
	}
	return strings.Join(kept, ".")
}

func newAPIError(status int, kind Kind, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	typ := TypeBadRequest
	if status >= http.StatusInternalServerError {
		typ = TypeInternal
	}
	return &APIError{StatusCode: status, Type: typ, Message: msg, kind: kind}
}

func NewBadRequest(msg string, args ...any) *APIError {
	return newAPIError(http.StatusBadRequest, KindValidation, msg, args...)
}

func NewNotFound(msg string, args ...any) *APIError {
	return newAPIError(http.StatusBadRequest, KindNotFound, msg, args...)
}

func NewConflict(msg string, args ...any) *APIError {
	return newAPIError(http.StatusBadRequest, KindConflict, msg, args...)
}

// NewPersistence reports a failed write. The message never carries the
// underlying cause, callers log it instead.
func NewPersistence(msg string, args ...any) *APIError {
	return newAPIError(http.StatusBadRequest, KindPersistence, msg, args...)
}

// NewStatus builds a bad_request style error for any client status code.
func NewStatus(status int, msg string) *APIError {
	return newAPIError(status, KindValidation, msg)
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		StatusCode: code,
		Type:       TypeValidation,
		Errors:     []FieldProblem{},
	}
}

func NewEmployeeNotFoundError(ref string) *APIError {
	return NewNotFound("Employee with '%s' was not found", ref)
}

func NewEmployeeDocumentNotFoundError(docType string) *APIError {
	return NewNotFound("Employee document with '%s' was not found", docType)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewBadRequest("Parameter '%s' has invalid type, expected: %s", name, dataType)
}
