package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
	"github.com/umurava/maternalcare-booking/internal/notify"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated caller extracted from the JWT. Ref is
// the opaque subject claim the rest of the service keys reservations
// on; Contact carries the delivery details for notifications.
type Principal struct {
	Ref     string
	Role    string
	Contact notify.Contact
}

// authClaims is the token payload issued by the identity service.
type authClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Auth enforces an HMAC-signed bearer token and stores the principal in
// the request context.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				handlers.RespondError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			claims := &authClaims{}
			token, err := jwt.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), claims,
				func(token *jwt.Token) (interface{}, error) {
					if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, jwt.ErrSignatureInvalid
					}
					return []byte(secret), nil
				})
			if err != nil || !token.Valid || claims.Subject == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			principal := Principal{
				Ref:  claims.Subject,
				Role: claims.Role,
				Contact: notify.Contact{
					Name:  claims.Name,
					Email: claims.Email,
					Phone: claims.Phone,
				},
			}
			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates administrative endpoints on the role claim. It
// must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok || p.Role != "admin" {
			handlers.RespondForbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
