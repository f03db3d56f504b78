// JWT bearer validation for tokens issued by the external identity
// provider. The service never issues tokens itself; it only verifies the
// shared-secret signature and expiry of what the dashboard frontend sends.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kooply/label-service/internal/domain/dto"
	"github.com/kooply/label-service/internal/i18n"
)

// OperatorClaims are the claims the identity provider puts in its tokens.
type OperatorClaims struct {
	Email string   `json:"email,omitempty"`
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// ContextOperatorKey is the gin context key holding the validated claims.
const ContextOperatorKey = "operator_claims"

// BearerAuth returns a middleware that validates HS256 bearer tokens signed
// with secret. On success the claims are stored in the context and the
// subject is exposed as "operator_id".
func BearerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		abort := func(key string) {
			message := i18n.GetTranslator().Translate(key, locale)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(requestID))
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(i18n.ErrKeyTokenRequired)
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abort(i18n.ErrKeyInvalidToken)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abort(i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			abort(i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(ContextOperatorKey, claims)
		c.Set("operator_id", claims.Subject)
		c.Next()
	}
}

// ValidateToken parses and verifies a bearer token against the shared secret.
func ValidateToken(tokenString, secret string) (*OperatorClaims, error) {
	claims := &OperatorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

// OperatorID returns the authenticated operator's subject, or "" when the
// request was not authenticated (auth disabled).
func OperatorID(c *gin.Context) string {
	if id, exists := c.Get("operator_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
