package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"detailshop/internal/domain/auth"
	"detailshop/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNoVerifier   = errors.New("token verification is not configured")
)

// Claims are the identity provider's session claims. Subject is the principal id;
// OrgID is the active organization and may be empty.
type Claims struct {
	OrgID string `json:"org_id"`
	jwt.RegisteredClaims
}

// TokenVerifier validates HS256 bearer tokens signed with a shared secret.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

func (v *TokenVerifier) Verify(raw string) (auth.Context, error) {
	if v == nil || len(v.secret) == 0 {
		return auth.Context{}, ErrNoVerifier
	}
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return auth.Context{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return auth.Context{}, ErrInvalidToken
	}
	return auth.Context{PrincipalID: claims.Subject, OrgID: strings.TrimSpace(claims.OrgID)}, nil
}

// Authenticate attaches the bearer token's caller to the request context.
// Requests without a token continue anonymously; use cases reject them where a
// principal is required. A malformed or invalid token is rejected with 401.
func Authenticate(v *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.Next()
			return
		}
		scheme, raw, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			abortUnauthorized(c, "malformed authorization header")
			return
		}

		ac, err := v.Verify(strings.TrimSpace(raw))
		if err != nil {
			slog.WarnContext(c.Request.Context(), "[auth][middleware] token rejected", "err", err)
			abortUnauthorized(c, "invalid token")
			return
		}
		c.Request = c.Request.WithContext(auth.WithContext(c.Request.Context(), ac))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", msg, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
