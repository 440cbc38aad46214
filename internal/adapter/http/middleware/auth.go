package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"konkred_vault/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDContextKey = "auth_user_id"

// RequireAuth validates the Bearer token (HS256, JWT_SECRET) and stores the
// user_id claim on the context. Checkout must be rejected here, before any
// processor call, when no valid session is presented.
func RequireAuth() gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))

	return func(c *gin.Context) {
		userID, err := userIDFromRequest(c, secret)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string {
	v, ok := c.Get(userIDContextKey)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func userIDFromRequest(c *gin.Context, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("jwt secret not configured")
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		// Some issuers put the user id in the standard subject claim.
		userID, _ = claims["sub"].(string)
	}
	if userID == "" {
		return "", errors.New("token carries no user id")
	}
	return userID, nil
}
