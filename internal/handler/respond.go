package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/clansite/api/internal/domain"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// RespondJSON writes a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// RespondError writes a JSON error response shaped {"error": ...}, detecting
// domain.AppError for status codes. Internal causes are logged, never sent to
// the client.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= 500 {
			slog.Error("request failed",
				"error", appErr.Error(),
				"path", r.URL.Path,
				"request_id", GetRequestID(r.Context()),
			)
			RespondJSON(w, appErr.Status, map[string]string{"error": "internal server error"})
			return
		}
		RespondJSON(w, appErr.Status, map[string]string{"error": appErr.Message})
		return
	}
	slog.Error("request failed",
		"error", err.Error(),
		"path", r.URL.Path,
		"request_id", GetRequestID(r.Context()),
	)
	RespondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// DecodeJSON reads and decodes a JSON request body into dst. Bodies over
// 1 MiB are rejected.
func DecodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes)).Decode(dst)
}
