package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/jaekwang-park/todo-assign-api/internal/validation"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst and validates it. It writes the
// error response itself and reports whether the handler may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, v *validation.Validator, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			WriteValidationError(w, "request body is required", nil)
		case errors.As(err, &typeErr):
			WriteValidationError(w, "request body has invalid field types", map[string]string{
				typeErr.Field: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
			})
		case errors.As(err, &maxErr):
			WriteError(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "request body too large")
		default:
			WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		}
		return false
	}

	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "request body too large")
		} else {
			WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		}
		return false
	}

	if err := v.Struct(dst); err != nil {
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			WriteValidationError(w, "request validation failed", fields)
		} else {
			WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return false
	}

	return true
}

func parseTodoID(w http.ResponseWriter, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteValidationError(w, "invalid todo id", map[string]string{
			"todo_id": "todo_id must be an integer",
		})
		return 0, false
	}
	return id, true
}
