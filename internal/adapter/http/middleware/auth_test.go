package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func newAuthedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-jwt-secret")

	t.Run("valid token with user_id claim", func(t *testing.T) {
		r := newAuthedRouter()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-jwt-secret", jwt.MapClaims{"user_id": "u1"}))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if want := `{"user_id":"u1"}`; w.Body.String() != want {
			t.Fatalf("expected %s, got %s", want, w.Body.String())
		}
	})

	t.Run("subject claim fallback", func(t *testing.T) {
		r := newAuthedRouter()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-jwt-secret", jwt.MapClaims{"sub": "u2"}))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name   string
			header string
		}{
			{"no header", ""},
			{"not bearer", "Basic dXNlcjpwYXNz"},
			{"garbage token", "Bearer not-a-jwt"},
			{"wrong secret", "Bearer " + signToken(t, "other-secret", jwt.MapClaims{"user_id": "u1"})},
			{"no user id claim", "Bearer " + signToken(t, "test-jwt-secret", jwt.MapClaims{"role": "buyer"})},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				r := newAuthedRouter()
				req := httptest.NewRequest(http.MethodGet, "/protected", nil)
				if tc.header != "" {
					req.Header.Set("Authorization", tc.header)
				}
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != http.StatusUnauthorized {
					t.Fatalf("expected 401, got %d", w.Code)
				}
			})
		}
	})

	t.Run("secret not configured rejects everything", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		r := newAuthedRouter()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-jwt-secret", jwt.MapClaims{"user_id": "u1"}))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestUserID_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := UserID(c); got != "" {
		t.Fatalf("expected empty user id, got %q", got)
	}
}
