package http_delivery

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gustydev/messenger-api/config"
	appErrors "github.com/gustydev/messenger-api/pkg/errors"
	"github.com/gustydev/messenger-api/pkg/utils"
)

type contextKey string

const userIDKey contextKey = "userID"

// ValidateToken resolves the acting user from the Authorization header and
// stores the subject id on the request context.
func ValidateToken(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				writeError(w, appErrors.ErrInvalidToken)
				return
			}

			subjectID, err := utils.ParseJWTToken(token, cfg)
			if err != nil {
				writeError(w, appErrors.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, subjectID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectID returns the authenticated user's id set by ValidateToken.
func SubjectID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
