// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
)

// DefaultBodyLimit caps JSON request bodies that do not carry file data.
const DefaultBodyLimit = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names so messages match what the caller sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc
// This allows using clean error-returning handlers with any router (chi, http.ServeMux, etc.)
//
// Usage with chi:
//
//	r.Post("/api/drafts", http.HandleError(h.saveDraft))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// DefaultErrorHandler handles errors returned from HTTP handlers.
// The body is {"error": msg, "code": status} plus any ServiceError details.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		// Unclassified errors never leak their text to the caller.
		errors.As(apperrors.GeneralError(err), &svcErr)
	}

	body := make(map[string]any, len(svcErr.Details)+2)
	for k, v := range svcErr.Details {
		body[k] = v
	}
	body["error"] = svcErr.Message
	body["code"] = svcErr.StatusCode()
	WriteJSON(w, svcErr.StatusCode(), body)
}

// WriteJSON writes data as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// DecodeJSON reads at most limit bytes of the request body into dst and runs
// struct validation on it. Failures are returned as bad request errors.
func DecodeJSON(r *http.Request, dst any, limit int64) error {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if int64(len(body)) > limit {
		return apperrors.BadRequestError(nil, fmt.Sprintf("request body exceeds %d bytes", limit))
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return Validate(dst)
}

// Validate runs struct tag validation and converts the first failure into a
// bad request error naming the offending JSON field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.BadRequestError(err, "invalid request")
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_without":
		return apperrors.BadRequestError(err, field+" is required")
	case "oneof":
		return apperrors.BadRequestError(err, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
	default:
		return apperrors.BadRequestError(err, fmt.Sprintf("%s is invalid", field))
	}
}

// QueryParam returns the trimmed query value, or a bad request error naming
// the parameter when it is empty.
func QueryParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", apperrors.BadRequestError(nil, name+" is required")
	}
	return v, nil
}
