package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

type Struct any

// FieldError is a single validation failure
// Only the offending field and a human message leak to the client,
// validator internals (params, struct paths) do not
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse body is {"error": <string or list of field errors>}
type errorResponse struct {
	Error any `json:"error"`
}

func JSON(w http.ResponseWriter, data any) {
	JSONWithStatus(w, data, http.StatusOK)
}

// Render error with a plain string message
func Error(w http.ResponseWriter, message string, code int) {
	JSONWithStatus(w, errorResponse{Error: message}, code)
}

// Render json decoding error
func DecodeError(w http.ResponseWriter, err error) {
	var message string

	// Try to provide more specific error message based on error type
	switch err := err.(type) {
	case *json.UnmarshalTypeError:
		message = fmt.Sprintf("invalid data type for field '%s'", err.Field)
	default:
		message = fmt.Sprintf("failed to parse JSON: %s", err.Error())
	}

	JSONWithStatus(w, errorResponse{Error: message}, http.StatusBadRequest)
}

// Render validation errors, one entry per offending field
func ValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	fields := make([]FieldError, 0, len(errs))

	// Create user-friendly error messages based on validation tag
	for _, fieldError := range errs {
		var message string
		switch fieldError.Tag() {
		case "required":
			message = "this field is required"
		case "min":
			message = fmt.Sprintf("value is too short (minimum %s)", fieldError.Param())
		case "max":
			message = fmt.Sprintf("value is too long (maximum %s)", fieldError.Param())
		default:
			message = "invalid value"
		}

		fields = append(fields, FieldError{Field: fieldError.Field(), Message: message})
	}

	JSONWithStatus(w, errorResponse{Error: fields}, http.StatusBadRequest)
}

// BindAndValidate decodes JSON request body into type T and validates it using struct tags.
// Returns the decoded value and writes appropriate error responses for decoding or validation failures.
func BindAndValidate[T Struct](w http.ResponseWriter, r *http.Request) (T, error) {
	var value T

	err := json.NewDecoder(r.Body).Decode(&value)
	if err != nil {
		DecodeError(w, err)
		return value, err
	}

	err = validate.Struct(value)
	if err != nil {
		// pretty sure cast will be ok cause expecting T is valid struct
		errs := err.(validator.ValidationErrors)
		ValidationErrors(w, errs)
		return value, err
	}

	return value, nil
}

// JSONWithStatus sends data as json and enforces status code
func JSONWithStatus(w http.ResponseWriter, data any, code int) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)

	if err := enc.Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}
