package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/nutripal/profile-backend/internal/models"
	"github.com/nutripal/profile-backend/internal/services"
)

type contextKey string

const userKey contextKey = "user"

const identityLookupTimeout = 10 * time.Second

// UserLookup resolves a UID with the identity provider.
type UserLookup interface {
	LookupUser(ctx context.Context, uid string) (*fbauth.UserRecord, error)
}

// VerifyUser requires the body uid to belong to a known user. It must run
// after ParseProfileForm.
func VerifyUser(users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			input := GetProfileInput(r.Context())
			if input == nil || input.UID == "" {
				writeJSON(w, http.StatusBadRequest, models.NewMessageResponse("UID is required"))
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), identityLookupTimeout)
			user, err := users.LookupUser(ctx, input.UID)
			cancel()
			if errors.Is(err, services.ErrIdentityNotFound) || (err == nil && user == nil) {
				writeJSON(w, http.StatusForbidden, models.NewMessageResponse("Unauthorized access"))
				return
			}
			if err != nil {
				log.Printf("[VerifyUser] uid=%s error=%v", input.UID, err)
				writeJSON(w, http.StatusInternalServerError,
					models.NewErrorResponse("Error validating user", models.ErrCodeIdentityCheck))
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
		})
	}
}

// GetUser returns the user attached by VerifyUser.
func GetUser(ctx context.Context) *fbauth.UserRecord {
	user, _ := ctx.Value(userKey).(*fbauth.UserRecord)
	return user
}
