package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/fuzball1989/job-posting-portal/internal/middleware"
	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/search"
)

// maxBodyBytes bounds request bodies. The largest job payload fits well
// within it.
const maxBodyBytes = 1 << 20

// DataResponse wraps a successful response
type DataResponse struct {
	Data any `json:"data"`
}

// CollectionResponse wraps a page of results
type CollectionResponse struct {
	Data       any                `json:"data"`
	Pagination *search.Pagination `json:"pagination,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful data response
func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, DataResponse{Data: data})
}

// WriteCollection writes a collection response with pagination
func WriteCollection(w http.ResponseWriter, status int, data any, pagination *search.Pagination) {
	WriteJSON(w, status, CollectionResponse{Data: data, Pagination: pagination})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	err.WriteJSON(w)
}

// WriteServiceError maps err and writes it. Errors that map to 500 are
// logged with the request id; their text never reaches the client.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error) {
	problem := MapServiceError(err)
	if problem.Status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
	}
	problem.Instance = r.URL.Path
	WriteError(w, problem)
}

// WriteValidation writes a 400 with per-field errors
func WriteValidation(w http.ResponseWriter, errs []model.FieldError) {
	WriteError(w, model.NewValidationError(errs))
}

// DecodeJSON decodes a JSON request body into the given struct. Unknown
// fields and trailing data are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// requireUserID returns the authenticated caller or writes a 401.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return "", false
	}
	return userID, true
}
