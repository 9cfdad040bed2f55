package http

import (
	"net/http"

	"github.com/MKhiriev/go-entry-keeper/internal/logger"
)

// getServerVersion answers GET /version with the configured version as plain
// text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(h.appInfo.GetAppVersion(r.Context()))); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "getServerVersion").Msg("failed to write version")
	}
}
