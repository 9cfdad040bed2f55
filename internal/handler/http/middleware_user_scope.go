package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-entry-keeper/internal/app"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/utils"
)

const (
	paramUserID = "user_id"
	paramLimit  = "limit"
)

// withUserScope stores the `user_id` query parameter in the request context
// under [utils.UserIDCtxKey]. Requests without one are rejected with 400.
func withUserScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.URL.Query().Get(paramUserID))
		if userID == "" {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("request without user scope")
			utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
