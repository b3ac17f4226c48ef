package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"detailshop/internal/domain/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func validClaims() Claims {
	return Claims{
		OrgID: "org-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newRouter(v *TokenVerifier, seen *auth.Context) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(), Metrics(), Authenticate(v))
	r.GET("/whoami", func(c *gin.Context) {
		*seen = auth.FromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestAuthenticate(t *testing.T) {
	v := NewTokenVerifier(secret)

	t.Run("valid token", func(t *testing.T) {
		var seen auth.Context
		r := newRouter(v, &seen)
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+sign(t, jwt.SigningMethodHS256, []byte(secret), validClaims()))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if seen.PrincipalID != "user_1" || seen.OrgID != "org-1" {
			t.Fatalf("unexpected caller: %+v", seen)
		}
	})

	t.Run("no token is anonymous", func(t *testing.T) {
		seen := auth.Context{PrincipalID: "sentinel"}
		r := newRouter(v, &seen)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		if w.Code != http.StatusNoContent || seen.IsAuthenticated() {
			t.Fatalf("expected anonymous pass-through, got %d %+v", w.Code, seen)
		}
	})

	rejected := map[string]string{
		"wrong secret":   "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims()),
		"wrong scheme":   "Basic abc",
		"missing token":  "Bearer ",
		"expired":        "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}}),
		"missing sub":    "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), Claims{OrgID: "org-1"}),
		"other hs alg":   "Bearer " + sign(t, jwt.SigningMethodHS512, []byte(secret), validClaims()),
		"garbage bearer": "Bearer not-a-jwt",
	}
	for name, header := range rejected {
		t.Run(name, func(t *testing.T) {
			var seen auth.Context
			r := newRouter(v, &seen)
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set("Authorization", header)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestTokenVerifier_NotConfigured(t *testing.T) {
	if _, err := NewTokenVerifier("").Verify("x"); err != ErrNoVerifier {
		t.Fatalf("expected ErrNoVerifier, got %v", err)
	}
}

func TestRecovery(t *testing.T) {
	var seen auth.Context
	r := newRouter(NewTokenVerifier(secret), &seen)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
