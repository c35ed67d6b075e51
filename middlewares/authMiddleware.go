package middleware

import (
	"context"
	"net/http"
	"strings"

	helper "github.com/CyberDemon2001/Bill-Generator/helper"
)

type contextKey string

const RestaurantIDKey contextKey = "restaurant_id"

// Authentication accepts the session token either from the "token" cookie or
// an "Authorization: Bearer" header and puts the restaurant id on the request
// context. Requests with neither, or with an invalid/expired token, get a 401.
func Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var clientToken string

		if cookie, err := r.Cookie("token"); err == nil {
			clientToken = cookie.Value
		}

		if clientToken == "" {
			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				clientToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if clientToken == "" {
			helper.RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := helper.ValidateToken(clientToken)
		if err != nil {
			helper.RespondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), RestaurantIDKey, claims.RestaurantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRestaurantID retrieves the authenticated restaurant id from the context.
func GetRestaurantID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(RestaurantIDKey).(string)
	return id, ok && id != ""
}
