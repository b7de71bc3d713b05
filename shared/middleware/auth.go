package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/forumapi/forum-api/shared/domain"
	jwt_internal "github.com/forumapi/forum-api/shared/jwt"
	"github.com/forumapi/forum-api/shared/logger"
	"github.com/forumapi/forum-api/shared/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid bearer token and stores
// the acting user in the request context otherwise.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				switch err {
				case errNoToken:
					utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
				case errInvalidClaims:
					logger.Log.Error("invalid jwt claims")
					utils.WriteFail(w, http.StatusUnauthorized, "access token tidak valid")
				default:
					utils.WriteErrorAndStatusCode(w, err)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return nil, errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return nil, errInvalidClaims
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, errInvalidClaims
	}

	return &domain.User{Id: uid, Username: username}, nil
}

var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// GetUserFromContext retrieves the user stored by NeedAuth, or nil.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
