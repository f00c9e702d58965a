// Package handlers exposes the HTTP API and formats the uniform envelopes.
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse writes the uniform JSON error envelope and returns any
// encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// RegisterNotFound installs the catch-all route returning the uniform 404
// envelope for anything no other route matched.
func RegisterNotFound(mux *http.ServeMux, logger *zap.Logger) {
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		logger.Info("Response",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", http.StatusNotFound),
			zap.String("message", "Not found"))
		if err := ErrorResponse(w, http.StatusNotFound, "Not found"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
	})
}
